package pager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingSource counts PageAt calls per index so tests can assert the
// lazy, at-most-once materialization contract.
type recordingSource struct {
	count int
	calls map[int]int
}

func newRecordingSource(count int) *recordingSource {
	return &recordingSource{count: count, calls: make(map[int]int)}
}

func (s *recordingSource) NumberOfPages() int { return s.count }

func (s *recordingSource) PageAt(index int) Page {
	s.calls[index]++
	return index // any non-nil handle will do
}

func newLoadedController(t *testing.T, pages int, width int32) (*Controller, *recordingSource) {
	t.Helper()
	src := newRecordingSource(pages)
	c := New(src, DefaultSettings())
	c.Reload(0)
	c.Layout(width)
	return c, src
}

func materializedSet(c *Controller) []int {
	var set []int
	for i := 0; i < c.NumberOfPages(); i++ {
		if c.Materialized(i) {
			set = append(set, i)
		}
	}
	return set
}

func TestLoadWindow_MiddlePage(t *testing.T) {
	c, _ := newLoadedController(t, 5, 320)

	c.ScrollTo(2, false)

	require.ElementsMatch(t, []int{0, 1, 2, 3}, materializedSet(c),
		"reload window around 0 plus scroll window around 2")
}

func TestLoadWindow_ClampsAtEdges(t *testing.T) {
	src := newRecordingSource(3)
	c := New(src, DefaultSettings())
	c.Reload(0)
	c.Layout(320)

	require.ElementsMatch(t, []int{0, 1}, materializedSet(c))

	c.ScrollTo(2, false)
	require.ElementsMatch(t, []int{0, 1, 2}, materializedSet(c))
}

func TestLoadWindow_Idempotent(t *testing.T) {
	c, src := newLoadedController(t, 5, 320)

	c.ScrollTo(2, false)
	c.ScrollTo(2, false)
	c.ScrollTo(2, false)

	for index, calls := range src.calls {
		require.Equalf(t, 1, calls, "page %d materialized more than once", index)
	}
}

func TestScrollTo_OffsetRoundTrip(t *testing.T) {
	c, _ := newLoadedController(t, 5, 320)

	for _, page := range []int{0, 1, 3, 4} {
		c.ScrollTo(page, false)
		require.Equal(t, page, c.CurrentPage())
		require.Equal(t, int32(page)*320, c.Offset())
	}
}

func TestScrollTo_GuaranteesNeighbors(t *testing.T) {
	c, _ := newLoadedController(t, 10, 320)

	c.ScrollTo(7, false)

	require.True(t, c.Materialized(6))
	require.True(t, c.Materialized(7))
	require.True(t, c.Materialized(8))
}

func TestScrollTo_AnimatedUsesHostPrimitive(t *testing.T) {
	src := newRecordingSource(5)
	var animatedTo []int32
	settings := DefaultSettings()
	settings.Animate = func(targetX int32) { animatedTo = append(animatedTo, targetX) }

	c := New(src, settings)
	c.Reload(0)
	c.Layout(320)

	c.ScrollTo(3, true)

	require.Equal(t, []int32{960}, animatedTo)
	require.Equal(t, int32(0), c.Offset(), "animated scroll leaves the offset to the host")
	require.Equal(t, 3, c.LeftSidePage())
	require.True(t, c.Materialized(2))
	require.True(t, c.Materialized(3))
	require.True(t, c.Materialized(4))
}

func TestPageFor_OffsetMapping(t *testing.T) {
	c, _ := newLoadedController(t, 5, 320)

	index, progress := c.PageFor(416)
	require.Equal(t, 1, index)
	require.InDelta(t, 0.3, progress, 1e-9)

	index, progress = c.PageFor(0)
	require.Equal(t, 0, index)
	require.Zero(t, progress)

	index, progress = c.PageFor(320)
	require.Equal(t, 1, index)
	require.Zero(t, progress)
}

func TestPredictivePreload_PastMidpoint(t *testing.T) {
	c, _ := newLoadedController(t, 5, 320)

	c.BeginDrag()
	c.SetOffset(192) // 60% from page 0 toward page 1

	require.True(t, c.Materialized(2), "page 2 must be resident before the drag completes")

	c.EndDrag()
}

func TestPredictivePreload_Disabled(t *testing.T) {
	src := newRecordingSource(5)
	c := New(src, Settings{Preload: false})
	c.Reload(0)
	c.Layout(320)

	c.BeginDrag()
	c.SetOffset(192)

	require.False(t, c.Materialized(2))
}

func TestPredictivePreload_StickyOnReversal(t *testing.T) {
	c, _ := newLoadedController(t, 5, 320)

	c.BeginDrag()
	c.SetOffset(192) // past the midpoint, window shifts early
	require.True(t, c.Materialized(2))

	c.SetOffset(64) // reverse back below the midpoint
	require.True(t, c.Materialized(2), "early shift is not undone by reversal")

	c.EndDrag()
}

func TestReload_ClearsAndRecenters(t *testing.T) {
	src := newRecordingSource(5)
	c := New(src, DefaultSettings())
	c.Reload(0)
	c.Layout(320)
	c.ScrollTo(4, false)

	c.Reload(2)
	c.Layout(320)

	require.ElementsMatch(t, []int{1, 2, 3}, materializedSet(c))
	require.Equal(t, int32(640), c.Offset())
	require.Equal(t, 2, c.CurrentPage())
}

func TestReload_MaterializationDeferredUntilLayout(t *testing.T) {
	src := newRecordingSource(5)
	layoutRequests := 0
	settings := DefaultSettings()
	settings.RequestLayout = func() { layoutRequests++ }

	c := New(src, settings)
	c.Reload(2)

	require.Equal(t, 1, layoutRequests)
	require.Empty(t, src.calls, "no page may load before geometry is known")

	c.Layout(320)
	require.ElementsMatch(t, []int{1, 2, 3}, materializedSet(c))
}

func TestReload_SourceSeesEachIndexOncePerGeneration(t *testing.T) {
	src := newRecordingSource(5)
	c := New(src, DefaultSettings())
	c.Reload(2)
	c.Layout(320)

	c.Reload(2)
	c.Layout(320)

	require.Equal(t, 2, src.calls[1])
	require.Equal(t, 2, src.calls[2])
	require.Equal(t, 2, src.calls[3])
}

func TestManualScrollEvents_FireOnlyForDrags(t *testing.T) {
	c, _ := newLoadedController(t, 5, 320)

	var begins, scrolls, ends int
	c.SetHooks(ScrollHooks{
		OnBeginScroll: func(int) { begins++ },
		OnScroll:      func(int, float64) { scrolls++ },
		OnEndScroll:   func(int) { ends++ },
	})

	c.ScrollTo(1, false)
	c.ScrollTo(3, false)
	c.SetOffset(640)
	require.Zero(t, begins+scrolls+ends, "programmatic moves are silent")

	c.BeginDrag()
	c.SetOffset(700)
	c.SetOffset(800)
	c.EndDrag()

	require.Equal(t, 1, begins)
	require.Equal(t, 2, scrolls)
	require.Equal(t, 1, ends)
}

func TestManualScrollEvents_IndexAndProgress(t *testing.T) {
	c, _ := newLoadedController(t, 5, 320)
	c.ScrollTo(1, false)

	var gotPage int
	var gotPercent float64
	c.SetHooks(ScrollHooks{
		OnScroll: func(page int, percent float64) {
			gotPage = page
			gotPercent = percent
		},
	})

	c.BeginDrag()
	c.SetOffset(416)
	c.EndDrag()

	require.Equal(t, 1, gotPage)
	require.InDelta(t, 0.3, gotPercent, 1e-9)
}

func TestEndDrag_ReloadsWindowAroundAnchor(t *testing.T) {
	c, _ := newLoadedController(t, 10, 320)

	c.BeginDrag()
	c.SetOffset(320 * 4)
	c.EndDrag()

	require.Equal(t, 4, c.LeftSidePage())
	require.True(t, c.Materialized(3))
	require.True(t, c.Materialized(4))
	require.True(t, c.Materialized(5))
	require.False(t, c.ManualScroll())
}

func TestEndDrag_WithoutBeginIsNoop(t *testing.T) {
	c, _ := newLoadedController(t, 5, 320)

	ends := 0
	c.SetHooks(ScrollHooks{OnEndScroll: func(int) { ends++ }})

	c.EndDrag()
	require.Zero(t, ends)
}

func TestNilSource_DegradesToZeroPages(t *testing.T) {
	c := New(nil, DefaultSettings())
	c.Reload(0)
	c.Layout(320)

	require.Zero(t, c.NumberOfPages())
	require.Zero(t, c.ContentOffsetRatio())
	require.False(t, c.Materialized(0))

	// None of these may panic on an empty controller.
	c.ScrollTo(0, false)
	c.BeginDrag()
	c.SetOffset(100)
	c.EndDrag()
}

func TestLoadWindow_OutOfRangeIndicesSkipped(t *testing.T) {
	c, src := newLoadedController(t, 5, 320)

	// Caller contract violation: index past the end. The window load around
	// it must skip everything out of range without surfacing an error.
	c.ScrollTo(5, false)

	require.True(t, c.Materialized(4))
	require.NotContains(t, src.calls, 5)
}

func TestLayout_WidthChangeRebuildsCache(t *testing.T) {
	c, src := newLoadedController(t, 5, 320)
	c.ScrollTo(2, false)

	c.Layout(480)

	require.ElementsMatch(t, []int{1, 2, 3}, materializedSet(c))
	require.Equal(t, int32(960), c.Offset(), "anchor page stays on screen at the new width")
	require.Equal(t, 2, src.calls[2], "rebuild re-materializes through the source")
}

func TestLayout_SameWidthIsNoop(t *testing.T) {
	c, src := newLoadedController(t, 5, 320)
	c.ScrollTo(2, false)
	before := len(src.calls)

	c.Layout(320)
	c.Layout(0)
	c.Layout(-10)

	require.Len(t, src.calls, before)
	require.Equal(t, int32(320), c.PageWidth())
}

func TestTelemetry_Ratios(t *testing.T) {
	c, _ := newLoadedController(t, 5, 320)

	c.ScrollTo(2, false)
	c.SetOffset(2*320 + 96)

	require.InDelta(t, 0.3, c.PagingPercent(), 1e-9)
	require.InDelta(t, float64(736)/float64(1600), c.ContentOffsetRatio(), 1e-9)
	require.Equal(t, int32(1600), c.ContentWidth())
}

func TestReload_MidDragReplacesState(t *testing.T) {
	c, _ := newLoadedController(t, 5, 320)

	c.BeginDrag()
	c.SetOffset(192)
	require.True(t, c.ManualScroll())

	c.Reload(0)
	require.False(t, c.ManualScroll(), "reload fully replaces state")

	c.Layout(320)
	require.ElementsMatch(t, []int{0, 1}, materializedSet(c))
	require.Equal(t, int32(0), c.Offset())
}
