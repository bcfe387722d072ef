package sfoglia

import (
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/pager"
	"github.com/veandco/go-sdl2/sdl"
)

// PagedViewOptions configures the PagedView component.
type PagedViewOptions struct {
	StartPage           int  // Page shown first
	Preload             bool // Predictive preload past 50% drag progress
	ShowPageDots        bool // Dot indicator above the footer
	ShowPageCounter     bool // Localized "Page N of M" in the top-right corner
	ShowThemeBackground bool // Render the theme background image
	EnableSelect        bool // A button exits with PagedViewActionSelected
	EnableAction        bool // Action button exits with PagedViewActionTriggered
	DisableBackButton   bool // Ignore the back button
	ActionButton        constants.VirtualButton
	BackgroundColor     sdl.Color
	TitleColor          sdl.Color
	SnapSpeed           float32 // Fraction of remaining distance covered per frame while settling
	FlickVelocity       float64 // Pixels per millisecond that counts as a flick
}

// DefaultPagedViewOptions returns the standard PagedView configuration.
func DefaultPagedViewOptions() PagedViewOptions {
	theme := internal.GetTheme()
	return PagedViewOptions{
		Preload:         true,
		ShowPageDots:    true,
		ShowPageCounter: true,
		ActionButton:    constants.VirtualButtonX,
		BackgroundColor: theme.BackgroundColor,
		TitleColor:      theme.TextColor,
		SnapSpeed:       0.25,
		FlickVelocity:   0.5,
	}
}

type pagedViewState struct {
	window          *internal.Window
	renderer        *sdl.Renderer
	title           string
	options         PagedViewOptions
	footerHelpItems []FooterHelpItem

	source   PageSource
	ctrl     *pager.Controller
	observer ScrollObserver

	scrollX       int32
	targetScrollX int32
	animating     bool
	needsLayout   bool
	lastWidth     int32

	dragging        bool
	settling        bool
	dragStartX      int32
	dragStartOffset int32
	lastPointerX    int32
	lastPointerTime time.Time
	velocity        float64 // px/ms, positive when dragging toward the next page

	horizontalInput internal.HorizontalInput
	lastInputTime   time.Time
	inputDelay      time.Duration

	titleTexture *sdl.Texture
	placeholder  *sdl.Texture
	counterCache *internal.PageTextureCache

	result PagedViewResult
}

// PagedView displays a horizontally paged sequence of content units
// supplied by source, keeping only the current page and its immediate
// neighbors materialized. Pages are flipped with left/right (or the
// shoulder buttons) and by touch drags with snap-on-release. The observer
// hears about user-driven scrolls only.
//
// Runs until the user selects, triggers, or cancels. Returns ErrCancelled
// on cancel. Must be called from the goroutine that ran Init.
func PagedView(title string, source PageSource, observer ScrollObserver, options PagedViewOptions, footerHelpItems []FooterHelpItem) (*PagedViewResult, error) {
	state := newPagedViewState(title, source, observer, options, footerHelpItems)
	defer state.cleanup()

	state.ctrl.Reload(options.StartPage)

	for !state.isFinished() {
		state.handleEvents()
		state.update()
		state.render()
	}

	state.result.Page = state.ctrl.CurrentPage()

	if state.result.Action == PagedViewActionCancelled {
		return nil, ErrCancelled
	}
	return &state.result, nil
}

func newPagedViewState(title string, source PageSource, observer ScrollObserver, options PagedViewOptions, footerHelpItems []FooterHelpItem) *pagedViewState {
	window := internal.GetWindow()

	s := &pagedViewState{
		window:          window,
		renderer:        window.Renderer,
		title:           title,
		options:         options,
		footerHelpItems: footerHelpItems,
		source:          source,
		observer:        observer,
		horizontalInput: internal.NewHorizontalInput(),
		counterCache:    internal.NewPageTextureCache(),
		lastInputTime:   time.Now(),
		inputDelay:      constants.DefaultInputDelay,
	}

	settings := pager.Settings{
		Preload:       options.Preload,
		Animate:       s.animateTo,
		RequestLayout: func() { s.needsLayout = true },
	}

	s.ctrl = pager.New(sourceAdapter{source}, settings)
	s.ctrl.SetHooks(pager.ScrollHooks{
		OnBeginScroll: observer.WillBeginManualScroll,
		OnScroll:      observer.DidManualScroll,
		OnEndScroll:   observer.DidEndManualScroll,
	})

	s.titleTexture = renderText(s.renderer, title, internal.Fonts.LargeFont, options.TitleColor)

	return s
}

// sourceAdapter bridges the SDL-level PageSource to the pager core. A nil
// application source degrades to zero pages.
type sourceAdapter struct {
	src PageSource
}

func (a sourceAdapter) NumberOfPages() int {
	if a.src == nil {
		return 0
	}
	return a.src.NumberOfPages()
}

func (a sourceAdapter) PageAt(index int) pager.Page {
	if a.src == nil {
		return nil
	}
	content := a.src.PageAt(index)
	if content == nil {
		return nil
	}
	return content
}

func (s *pagedViewState) isFinished() bool {
	return s.result.Action != PagedViewActionNone
}

// animateTo is the animation primitive handed to the pager core: it turns
// ScrollTo(page, animated=true) into a settle toward the target offset.
func (s *pagedViewState) animateTo(targetX int32) {
	s.targetScrollX = targetX
	s.animating = true
}

func (s *pagedViewState) handleEvents() {
	event := sdl.WaitEventTimeout(16)
	for event != nil {
		s.handleEvent(event)
		event = sdl.PollEvent()
	}
}

func (s *pagedViewState) handleEvent(event sdl.Event) {
	translator := internal.GetInputTranslator()

	switch e := event.(type) {
	case *sdl.QuitEvent:
		s.result.Action = PagedViewActionCancelled
		return

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED || e.Event == sdl.WINDOWEVENT_RESIZED {
			s.needsLayout = true
		}
		return
	}

	if pointer := translator.TranslatePointer(event, s.window.GetWidth(), s.window.GetHeight()); pointer != nil {
		s.handlePointer(pointer)
		return
	}

	if inputEvent := translator.TranslateButton(event); inputEvent != nil {
		if inputEvent.Pressed {
			s.handleButton(inputEvent)
		} else {
			s.horizontalInput.SetHeld(inputEvent.Button, false)
		}
	}
}

func (s *pagedViewState) isInputAllowed() bool {
	return time.Since(s.lastInputTime) >= s.inputDelay
}

func (s *pagedViewState) handleButton(inputEvent *internal.Event) {
	if !s.isInputAllowed() {
		return
	}
	s.lastInputTime = time.Now()

	switch inputEvent.Button {
	case constants.VirtualButtonLeft, constants.VirtualButtonRight:
		s.horizontalInput.SetHeld(inputEvent.Button, true)
		if inputEvent.Button == constants.VirtualButtonLeft {
			s.flipPage(-1)
		} else {
			s.flipPage(1)
		}
	case constants.VirtualButtonL1:
		s.flipPage(-1)
	case constants.VirtualButtonR1:
		s.flipPage(1)
	case constants.VirtualButtonB:
		if !s.options.DisableBackButton {
			s.result.Action = PagedViewActionCancelled
		}
	case constants.VirtualButtonA:
		if s.options.EnableSelect {
			s.result.Action = PagedViewActionSelected
		}
	case s.options.ActionButton:
		if s.options.EnableAction {
			s.result.Action = PagedViewActionTriggered
		}
	}
}

// flipPage moves one page in either direction with the snap animation.
// Button navigation is a programmatic jump: the scroll observer stays
// silent, matching the manual-scroll-only contract.
func (s *pagedViewState) flipPage(delta int) {
	if s.dragging {
		return
	}
	n := s.ctrl.NumberOfPages()
	if n == 0 || s.ctrl.PageWidth() == 0 {
		return
	}

	next := s.ctrl.CurrentPage() + delta
	if s.animating {
		// Chain flips from the in-flight target, not the page under the
		// viewport, so holding the button pages steadily.
		next = int(s.targetScrollX/s.ctrl.PageWidth()) + delta
	}
	next = clampInt(next, 0, n-1)

	s.ctrl.ScrollTo(next, true)
}

func (s *pagedViewState) handlePointer(pointer *internal.PointerEvent) {
	switch pointer.Phase {
	case internal.PointerDown:
		s.beginDrag(pointer.X)
	case internal.PointerMove:
		s.moveDrag(pointer.X)
	case internal.PointerUp:
		s.endDrag()
	}
}

func (s *pagedViewState) beginDrag(x int32) {
	if s.ctrl.NumberOfPages() == 0 {
		return
	}

	// A touch mid-settle picks the surface back up.
	s.animating = false
	s.settling = false

	s.dragging = true
	s.dragStartX = x
	s.dragStartOffset = s.scrollX
	s.lastPointerX = x
	s.lastPointerTime = time.Now()
	s.velocity = 0

	s.ctrl.BeginDrag()
}

func (s *pagedViewState) moveDrag(x int32) {
	if !s.dragging {
		return
	}

	now := time.Now()
	if dt := now.Sub(s.lastPointerTime); dt > 0 {
		s.velocity = float64(s.lastPointerX-x) / float64(dt.Milliseconds()+1)
	}
	s.lastPointerX = x
	s.lastPointerTime = now

	offset := s.dragStartOffset - (x - s.dragStartX)
	s.scrollX = internal.Clamp32(offset, 0, s.maxOffset())
	s.ctrl.SetOffset(s.scrollX)
}

func (s *pagedViewState) endDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.settling = true

	target := s.snapTarget()
	s.ctrl.ScrollTo(target, true)
}

// snapTarget picks the page to settle on after a release: a fast flick
// wins over position, otherwise whichever page the viewport is past
// halfway into.
func (s *pagedViewState) snapTarget() int {
	base := s.ctrl.CurrentPage()
	progress := s.ctrl.PagingPercent()

	target := base
	switch {
	case s.velocity >= s.options.FlickVelocity:
		target = base + 1
	case s.velocity <= -s.options.FlickVelocity:
		target = base
	case progress > 0.5:
		target = base + 1
	}

	return clampInt(target, 0, s.ctrl.NumberOfPages()-1)
}

func (s *pagedViewState) maxOffset() int32 {
	n := int32(s.ctrl.NumberOfPages())
	if n == 0 {
		return 0
	}
	return (n - 1) * s.pageWidth()
}

func (s *pagedViewState) pageWidth() int32 {
	return s.window.GetWidth()
}

func (s *pagedViewState) update() {
	s.applyLayout()
	s.handleDirectionalRepeats()
	s.stepAnimation()
}

// applyLayout is the deferred half of Reload: the pager core asks for a
// layout pass and gets one here, on the next frame, when the window bounds
// are valid. Width changes tear down the old content units first since the
// cache is rebuilt at the new geometry.
func (s *pagedViewState) applyLayout() {
	width := s.pageWidth()
	if !s.needsLayout && width == s.lastWidth {
		return
	}

	if width != s.lastWidth && s.lastWidth != 0 {
		s.destroyCachedPages()
	}
	// Page count may have changed with a reload, so stale counter labels go.
	s.counterCache.Destroy()
	s.lastWidth = width
	s.needsLayout = false

	s.ctrl.Layout(width)
	s.scrollX = s.ctrl.Offset()
	s.targetScrollX = s.scrollX
	s.animating = false
}

func (s *pagedViewState) handleDirectionalRepeats() {
	switch s.horizontalInput.Update() {
	case internal.DirectionLeft:
		s.flipPage(-1)
	case internal.DirectionRight:
		s.flipPage(1)
	}
}

func (s *pagedViewState) stepAnimation() {
	if !s.animating || s.dragging {
		return
	}

	diff := s.targetScrollX - s.scrollX
	step := int32(float32(diff) * s.options.SnapSpeed)
	if step == 0 {
		if diff > 0 {
			step = 1
		} else if diff < 0 {
			step = -1
		}
	}
	s.scrollX += step
	s.ctrl.SetOffset(s.scrollX)

	if s.scrollX == s.targetScrollX {
		s.animating = false
		if s.settling {
			s.settling = false
			s.ctrl.EndDrag()
		}
	}
}

func (s *pagedViewState) render() {
	s.clearScreen()

	contentTop := s.renderTitle()
	s.renderPages(contentTop)
	s.renderPageDots()
	renderFooter(s.renderer, internal.Fonts.SmallFont, s.footerHelpItems, 16)

	s.window.Present()
}

func (s *pagedViewState) clearScreen() {
	bg := s.options.BackgroundColor
	s.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	s.renderer.Clear()

	if s.options.ShowThemeBackground {
		s.window.RenderBackground()
	}
}

func (s *pagedViewState) renderTitle() int32 {
	margins := internal.UniformPadding(20)
	top := margins.Top

	if s.titleTexture != nil {
		w, h := textureSize(s.titleTexture)
		s.renderer.Copy(s.titleTexture, nil, &sdl.Rect{X: margins.Left, Y: top, W: w, H: h})
		top += h + constants.DefaultTitleSpacing
	}

	if s.options.ShowPageCounter && s.ctrl.NumberOfPages() > 0 {
		if counter := s.counterTexture(s.ctrl.CurrentPage()); counter != nil {
			w, h := textureSize(counter)
			s.renderer.Copy(counter, nil, &sdl.Rect{
				X: s.window.GetWidth() - margins.Right - w,
				Y: margins.Top,
				W: w,
				H: h,
			})
		}
	}

	return top + constants.DefaultTitleSpacing
}

// counterTexture returns the rendered "Page N of M" label for a page,
// cached per index so the text is not re-rendered every frame.
func (s *pagedViewState) counterTexture(page int) *sdl.Texture {
	if cached := s.counterCache.Get(page); cached != nil {
		return cached
	}

	label := internal.PageCounterLabel(page, s.ctrl.NumberOfPages())
	texture := renderText(s.renderer, label, internal.Fonts.SmallFont, internal.GetTheme().HintColor)
	if texture != nil {
		s.counterCache.Set(page, texture)
	}
	return texture
}

func (s *pagedViewState) renderPages(contentTop int32) {
	n := s.ctrl.NumberOfPages()
	if n == 0 || s.lastWidth == 0 {
		return
	}

	width := s.pageWidth()
	footerSpace := int32(70)
	bounds := sdl.Rect{Y: contentTop, W: width, H: s.window.GetHeight() - contentTop - footerSpace}

	for i := 0; i < n; i++ {
		pageX := int32(i)*width - s.scrollX
		if pageX+width <= 0 || pageX >= width {
			continue
		}
		bounds.X = pageX

		if content, ok := s.ctrl.Cached(i).(PageContent); ok && content != nil {
			content.Render(s.renderer, bounds)
		} else {
			s.renderPlaceholder(bounds)
		}
	}
}

// renderPlaceholder fills the slot of a page that has no content: either
// not materialized yet, or the source declined to supply one.
func (s *pagedViewState) renderPlaceholder(bounds sdl.Rect) {
	if s.placeholder == nil {
		s.placeholder = internal.PagePlaceholderTexture(s.renderer, 96)
	}
	if s.placeholder == nil {
		return
	}

	glyph := sdl.Rect{
		X: bounds.X + (bounds.W-96)/2,
		Y: bounds.Y + (bounds.H-96)/2,
		W: 96,
		H: 96,
	}
	s.renderer.Copy(s.placeholder, nil, &glyph)
}

func (s *pagedViewState) renderPageDots() {
	n := s.ctrl.NumberOfPages()
	if !s.options.ShowPageDots || n < 2 {
		return
	}

	theme := internal.GetTheme()
	const dotSize, dotGap = int32(8), int32(10)
	totalWidth := int32(n)*dotSize + int32(n-1)*dotGap
	x := (s.window.GetWidth() - totalWidth) / 2
	y := s.window.GetHeight() - 50
	current := s.ctrl.CurrentPage()

	for i := 0; i < n; i++ {
		color := theme.HintColor
		if i == current {
			color = theme.AccentColor
		}
		s.renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		s.renderer.FillRect(&sdl.Rect{X: x, Y: y, W: dotSize, H: dotSize})
		x += dotSize + dotGap
	}
}

func (s *pagedViewState) destroyCachedPages() {
	for i := 0; i < s.ctrl.NumberOfPages(); i++ {
		if d, ok := s.ctrl.Cached(i).(Destroyer); ok {
			d.Destroy()
		}
	}
}

func (s *pagedViewState) cleanup() {
	s.destroyCachedPages()

	if s.titleTexture != nil {
		s.titleTexture.Destroy()
	}
	if s.placeholder != nil {
		s.placeholder.Destroy()
	}
	s.counterCache.Destroy()
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
