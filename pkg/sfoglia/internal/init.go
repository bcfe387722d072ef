// Package internal contains the SDL plumbing behind the sfoglia paged
// container: window and renderer setup, input translation, theming, fonts,
// and rendering utilities. Nothing here is part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
