// Package pager implements the page windowing logic behind the PagedView
// component: a horizontally paged sequence of lazily materialized content
// units with a 3-wide resident window.
//
// Unlike the top-level sfoglia package, pager knows nothing about SDL. It
// tracks a scroll offset in pixels, decides which pages must be alive at
// that offset, and reports manual-scroll progress to optional hooks. The
// widget layer feeds it layout and drag telemetry; headless code (and
// tests) can drive it directly.
//
// # Basic Usage
//
//	src := pager.SourceFuncs{
//	    Count: func() int { return 5 },
//	    Page:  func(i int) pager.Page { return newGalleryPage(i) },
//	}
//
//	c := pager.New(src, pager.DefaultSettings())
//	c.Reload(0)
//	c.Layout(640) // viewport width becomes known; window around page 0 loads
//
//	// User drags the surface:
//	c.BeginDrag()
//	c.SetOffset(416)
//	c.EndDrag()
//
// # Window Semantics
//
// At any settled position exactly the current page and its immediate left
// and right neighbors are materialized; indices outside the page range are
// skipped. Materialization is lazy and idempotent: Source.PageAt is called
// at most once per index between reloads. With predictive preload enabled
// (the default), a drag that passes the midpoint toward the next page pulls
// that page's far neighbor in early, and the window does not shrink again
// if the drag reverses.
//
// # Threading
//
// A Controller is a single logical executor: every method must be called
// from the one goroutine that owns the UI loop. Nothing is locked.
package pager
