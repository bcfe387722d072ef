package pager

// Page is an opaque handle to one materialized content unit. The pager
// never inspects it; it only tracks which indices hold one. A nil entry
// means the page has not been materialized yet.
type Page = any

// Source supplies pages on demand.
// NumberOfPages is read on every Reload; PageAt is called lazily, at most
// once per index between reloads. A Source that returns a different count
// between reloads is fine; changing the count without a Reload is not
// reconciled.
type Source interface {
	NumberOfPages() int
	PageAt(index int) Page
}

// SourceFuncs adapts plain functions to a Source. Either field may be nil:
// a nil Count reports zero pages, a nil Page materializes nothing.
type SourceFuncs struct {
	Count func() int
	Page  func(index int) Page
}

func (s SourceFuncs) NumberOfPages() int {
	if s.Count == nil {
		return 0
	}
	return s.Count()
}

func (s SourceFuncs) PageAt(index int) Page {
	if s.Page == nil {
		return nil
	}
	return s.Page(index)
}

// ScrollHooks receives manual-scroll telemetry. All fields are optional;
// nil hooks are skipped. Hooks fire only for user-driven drags, never for
// programmatic ScrollTo jumps.
//
// OnScroll fires on every offset update while a drag is live, so it must
// return quickly.
type ScrollHooks struct {
	OnBeginScroll func(page int)
	OnScroll      func(page int, percent float64)
	OnEndScroll   func(page int)
}
