package pager

// Settings configures a Controller.
// Animate, when set, is the host animation primitive: ScrollTo with
// animated=true hands it the target offset instead of jumping there. The
// host is expected to feed the intermediate positions back through
// SetOffset. RequestLayout, when set, is invoked by Reload to ask the host
// for a layout pass; the reload completes on the next Layout call.
type Settings struct {
	Preload       bool // shift the window one page early past 50% drag progress
	Animate       func(targetX int32)
	RequestLayout func()
}

// DefaultSettings returns Settings with predictive preload enabled.
func DefaultSettings() Settings {
	return Settings{Preload: true}
}

// Controller keeps a 3-wide window of materialized pages positioned around
// a horizontal scroll offset. Not safe for concurrent use; all methods
// belong to the single goroutine running the UI loop.
type Controller struct {
	source   Source
	hooks    ScrollHooks
	settings Settings

	pages        []Page
	pageWidth    int32
	offsetX      int32
	leftSidePage int
	manual       bool

	pendingStart int
	hasPending   bool
}

// New creates a Controller over source. A nil source behaves as an empty
// one: zero pages, nothing to materialize.
func New(source Source, settings Settings) *Controller {
	return &Controller{source: source, settings: settings}
}

// SetHooks installs the scroll telemetry hooks.
func (c *Controller) SetHooks(hooks ScrollHooks) {
	c.hooks = hooks
}

// SetPreload toggles predictive preload.
func (c *Controller) SetPreload(enabled bool) {
	c.settings.Preload = enabled
}

// Preload reports whether predictive preload is enabled.
func (c *Controller) Preload() bool {
	return c.settings.Preload
}

// NumberOfPages returns the page count captured by the last Reload.
func (c *Controller) NumberOfPages() int {
	return len(c.pages)
}

// Reload discards every cached page, re-reads the source count, and
// schedules the window around startPage to load on the next Layout call.
// Page geometry is only trustworthy after a layout pass, so the
// materialization and the offset jump are deferred until then; the
// RequestLayout hook, if set, is invoked to get one going. Safe to call at
// any time, including mid-drag: state is simply replaced.
func (c *Controller) Reload(startPage int) {
	count := 0
	if c.source != nil {
		count = c.source.NumberOfPages()
	}
	c.pages = make([]Page, count)
	c.manual = false
	c.pendingStart = startPage
	c.hasPending = true

	if c.settings.RequestLayout != nil {
		c.settings.RequestLayout()
	}
}

// Layout tells the controller the viewport (and therefore page) width.
// Call it whenever the host completes a layout pass. A pending Reload is
// finished here: the window around its start page is materialized and the
// offset jumps there without animation. A width change alone rebuilds the
// cache around the current anchor and repositions the offset so the same
// page stays on screen. Widths <= 0 are ignored.
func (c *Controller) Layout(pageWidth int32) {
	if pageWidth <= 0 {
		return
	}
	widthChanged := pageWidth != c.pageWidth
	c.pageWidth = pageWidth

	switch {
	case c.hasPending:
		c.hasPending = false
		c.leftSidePage = c.pendingStart
		c.loadWindow(c.pendingStart)
		c.offsetX = int32(c.pendingStart) * pageWidth
	case widthChanged:
		c.pages = make([]Page, len(c.pages))
		c.loadWindow(c.leftSidePage)
		c.offsetX = int32(c.leftSidePage) * pageWidth
	}
}

// ScrollTo moves to page, materializing it and its neighbors first.
// The index is not validated; the caller owns keeping it inside
// [0, NumberOfPages). With animated=true and an Animate primitive
// configured, the offset change is handed to the host; otherwise the jump
// is instant. No scroll hooks fire for programmatic moves.
func (c *Controller) ScrollTo(page int, animated bool) {
	c.loadWindow(page)
	c.leftSidePage = page
	target := int32(page) * c.pageWidth
	if animated && c.settings.Animate != nil {
		c.settings.Animate(target)
		return
	}
	c.offsetX = target
}

// BeginDrag marks the start of a user-driven scroll. The current page is
// captured as the anchor and OnBeginScroll fires once.
func (c *Controller) BeginDrag() {
	if c.manual {
		return
	}
	c.manual = true
	c.leftSidePage, _ = c.PageFor(c.offsetX)
	if c.hooks.OnBeginScroll != nil {
		c.hooks.OnBeginScroll(c.leftSidePage)
	}
}

// SetOffset moves the scroll offset. During a manual scroll it also
// re-anchors the window and fires OnScroll with the in-page progress.
// With preload enabled it also pulls the next window in once the drag is
// past the midpoint. The early shift is sticky: reversing the drag does not
// evict what it loaded. Outside a manual scroll the offset just moves
// (programmatic animation ticks land here).
func (c *Controller) SetOffset(x int32) {
	c.offsetX = x
	if !c.manual {
		return
	}

	index, progress := c.PageFor(x)
	c.leftSidePage = index
	if c.settings.Preload && progress > 0.5 {
		c.loadWindow(index + 1)
	}
	if c.hooks.OnScroll != nil {
		c.hooks.OnScroll(index, progress)
	}
}

// EndDrag marks the end of a user-driven scroll (after any deceleration
// has settled). OnEndScroll fires once and the window is reloaded around
// the final anchor. A no-op when no drag is live.
func (c *Controller) EndDrag() {
	if !c.manual {
		return
	}
	c.manual = false
	if c.hooks.OnEndScroll != nil {
		c.hooks.OnEndScroll(c.leftSidePage)
	}
	c.loadWindow(c.leftSidePage)
}

// loadWindow materializes pages around-1, around, around+1. Indices
// outside the page range are skipped; already materialized pages are left
// alone, so the source sees each index at most once between reloads.
func (c *Controller) loadWindow(around int) {
	for i := around - 1; i <= around+1; i++ {
		c.materialize(i)
	}
}

func (c *Controller) materialize(index int) {
	if index < 0 || index >= len(c.pages) {
		return
	}
	if c.pages[index] != nil {
		return
	}
	if c.source == nil {
		return
	}
	c.pages[index] = c.source.PageAt(index)
}

// PageFor maps a scroll offset to a page index and the fractional progress
// within that page, clamped to [0,1]. The mapping assumes every page is
// exactly one viewport wide. Before the first Layout (or for negative
// offsets) it reports page 0 at progress 0.
func (c *Controller) PageFor(offsetX int32) (index int, progress float64) {
	if c.pageWidth <= 0 || offsetX <= 0 {
		return 0, 0
	}
	index = int(offsetX / c.pageWidth)
	progress = float64(offsetX%c.pageWidth) / float64(c.pageWidth)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return index, progress
}

// CurrentPage returns the page whose content occupies the viewport's left
// edge at the current offset.
func (c *Controller) CurrentPage() int {
	index, _ := c.PageFor(c.offsetX)
	return index
}

// LeftSidePage returns the window anchor: the page last captured by a
// drag update, programmatic scroll, or reload.
func (c *Controller) LeftSidePage() int {
	return c.leftSidePage
}

// Offset returns the current scroll offset in pixels.
func (c *Controller) Offset() int32 {
	return c.offsetX
}

// PageWidth returns the width set by the last Layout call.
func (c *Controller) PageWidth() int32 {
	return c.pageWidth
}

// ContentWidth returns pageWidth times the page count.
func (c *Controller) ContentWidth() int32 {
	return c.pageWidth * int32(len(c.pages))
}

// ContentOffsetRatio reports the offset as a fraction of the full content
// width, 0 when there is no content. Derived on every call, never cached.
func (c *Controller) ContentOffsetRatio() float64 {
	cw := c.ContentWidth()
	if cw == 0 {
		return 0
	}
	return float64(c.offsetX) / float64(cw)
}

// PagingPercent reports the progress within the current page, in [0,1].
func (c *Controller) PagingPercent() float64 {
	_, progress := c.PageFor(c.offsetX)
	return progress
}

// ManualScroll reports whether a user-driven drag sequence is live.
func (c *Controller) ManualScroll() bool {
	return c.manual
}

// Materialized reports whether the page at index is resident. Out-of-range
// indices report false.
func (c *Controller) Materialized(index int) bool {
	return index >= 0 && index < len(c.pages) && c.pages[index] != nil
}

// Cached returns the resident page handle at index, or nil if the page is
// not materialized or the index is out of range. It never materializes.
func (c *Controller) Cached(index int) Page {
	if index < 0 || index >= len(c.pages) {
		return nil
	}
	return c.pages[index]
}
