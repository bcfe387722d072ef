package sfoglia

import (
	"github.com/veandco/go-sdl2/sdl"
)

// PageContent is one materialized content unit of a PagedView. Render is
// called every frame the page is on screen (or partially on screen while
// scrolling) with the page's current bounds.
//
// Implementations that own SDL resources should also implement Destroyer;
// PagedView calls Destroy on every cached page when the view exits or the
// cache is rebuilt.
type PageContent interface {
	Render(renderer *sdl.Renderer, bounds sdl.Rect)
}

// Destroyer is the optional teardown side of PageContent.
type Destroyer interface {
	Destroy()
}

// PageSource supplies page content on demand. NumberOfPages is read on
// every reload; PageAt is called lazily, at most once per index between
// reloads, only for pages inside the resident window.
type PageSource interface {
	NumberOfPages() int
	PageAt(index int) PageContent
}

// PageSourceFuncs adapts plain functions to a PageSource. Either field may
// be nil: a nil Count reports zero pages, a nil Page materializes nothing
// (the placeholder glyph is rendered instead).
type PageSourceFuncs struct {
	Count func() int
	Page  func(index int) PageContent
}

func (s PageSourceFuncs) NumberOfPages() int {
	if s.Count == nil {
		return 0
	}
	return s.Count()
}

func (s PageSourceFuncs) PageAt(index int) PageContent {
	if s.Page == nil {
		return nil
	}
	return s.Page(index)
}

// ScrollObserver receives manual-scroll notifications from a PagedView.
// All fields are optional. Observers fire only for user-driven drags and
// flicks, never for programmatic jumps; they run on the UI loop and must
// not block.
type ScrollObserver struct {
	WillBeginManualScroll func(page int)
	DidManualScroll       func(page int, percent float64)
	DidEndManualScroll    func(page int)
}
