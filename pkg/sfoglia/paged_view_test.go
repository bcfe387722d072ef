package sfoglia

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

type stubPage struct {
	index     int
	destroyed bool
}

func (p *stubPage) Render(renderer *sdl.Renderer, bounds sdl.Rect) {}
func (p *stubPage) Destroy()                                       { p.destroyed = true }

func TestPageSourceFuncs_NilFieldsAreSafe(t *testing.T) {
	var src PageSourceFuncs

	require.Zero(t, src.NumberOfPages())
	require.Nil(t, src.PageAt(0))
}

func TestPageSourceFuncs_Delegates(t *testing.T) {
	page := &stubPage{index: 3}
	src := PageSourceFuncs{
		Count: func() int { return 7 },
		Page: func(index int) PageContent {
			require.Equal(t, 3, index)
			return page
		},
	}

	require.Equal(t, 7, src.NumberOfPages())
	require.Same(t, page, src.PageAt(3).(*stubPage))
}

func TestSourceAdapter_NilSource(t *testing.T) {
	a := sourceAdapter{}

	require.Zero(t, a.NumberOfPages())
	require.Nil(t, a.PageAt(0))
}

func TestSourceAdapter_NilContentStaysNil(t *testing.T) {
	a := sourceAdapter{src: PageSourceFuncs{
		Count: func() int { return 1 },
		Page:  func(int) PageContent { return nil },
	}}

	// A nil PageContent must come through as an untyped nil so the pager
	// core treats the slot as unmaterialized rather than caching a dud.
	require.Nil(t, a.PageAt(0))
}

func TestDefaultPagedViewOptions(t *testing.T) {
	opts := DefaultPagedViewOptions()

	require.True(t, opts.Preload)
	require.True(t, opts.ShowPageDots)
	require.True(t, opts.ShowPageCounter)
	require.Zero(t, opts.StartPage)
	require.Greater(t, opts.SnapSpeed, float32(0))
	require.Greater(t, opts.FlickVelocity, float64(0))
}

func TestClampInt(t *testing.T) {
	require.Equal(t, 0, clampInt(-3, 0, 4))
	require.Equal(t, 4, clampInt(9, 0, 4))
	require.Equal(t, 2, clampInt(2, 0, 4))
	require.Equal(t, 0, clampInt(1, 0, -1), "empty range collapses to the lower bound")
}

func TestIsCancelled(t *testing.T) {
	require.True(t, IsCancelled(ErrCancelled))
	require.False(t, IsCancelled(nil))
	require.False(t, IsCancelled(NewInfrastructureError("render", nil)))
}

func TestInfrastructureError(t *testing.T) {
	inner := NewInfrastructureError("load_font", ErrCancelled)

	require.True(t, IsInfrastructureError(inner))
	require.ErrorIs(t, inner, ErrCancelled)
	require.Equal(t, "sfoglia: load_font: operation cancelled by user", inner.Error())

	bare := NewInfrastructureError("render", nil)
	require.Equal(t, "sfoglia: render", bare.Error())
}
