package sfoglia

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FooterHelpItem pairs a button glyph with a short help text, rendered
// along the bottom edge of a component.
type FooterHelpItem struct {
	ButtonName string // Button glyph or name, e.g. "A" or constants.LeftRight
	HelpText   string // Short description, e.g. "Select"
}

func renderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	if text == "" || font == nil {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}

	return texture
}

func textureSize(texture *sdl.Texture) (int32, int32) {
	_, _, w, h, err := texture.Query()
	if err != nil {
		return 0, 0
	}
	return w, h
}

// renderFooter draws the help items right-aligned along the bottom edge.
// Textures are created and destroyed per frame; footers are tiny and this
// keeps the helper stateless.
func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []FooterHelpItem, bottomMargin int32) {
	if len(items) == 0 || font == nil {
		return
	}

	window := internal.GetWindow()
	theme := internal.GetTheme()

	x := window.GetWidth() - 20
	y := window.GetHeight() - bottomMargin

	// Render right to left so the first item ends up leftmost.
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]

		help := renderText(renderer, item.HelpText, font, theme.HintColor)
		if help != nil {
			w, h := textureSize(help)
			x -= w
			renderer.Copy(help, nil, &sdl.Rect{X: x, Y: y - h, W: w, H: h})
			help.Destroy()
			x -= 8
		}

		button := renderText(renderer, item.ButtonName, font, theme.AccentColor)
		if button != nil {
			w, h := textureSize(button)
			x -= w
			renderer.Copy(button, nil, &sdl.Rect{X: x, Y: y - h, W: w, H: h})
			button.Destroy()
			x -= 24
		}
	}
}
