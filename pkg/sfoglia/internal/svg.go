package internal

import (
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// placeholderSVG is the glyph shown for pages that are not materialized
// yet: a simple framed image outline. Rendered tinted by the theme's
// placeholder color.
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
  <path fill="#ffffff" d="M19 3H5c-1.1 0-2 .9-2 2v14c0 1.1.9 2 2 2h14c1.1 0 2-.9 2-2V5c0-1.1-.9-2-2-2zm0 16H5V5h14v14zM13.96 12.29l-2.75 3.54-1.96-2.36L6.5 17h11l-3.54-4.71z"/>
</svg>`

// RasterizeSVG renders SVG source into an SDL texture of the given size.
// Returns nil if the source does not parse or the texture cannot be
// created; placeholder art is best effort.
func RasterizeSVG(renderer *sdl.Renderer, source string, w, h int32) *sdl.Texture {
	icon, err := oksvg.ReadIconStream(strings.NewReader(source))
	if err != nil {
		GetInternalLogger().Error("Failed to parse SVG", "error", err)
		return nil
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	scanner := rasterx.NewScannerGV(int(w), int(h), rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(int(w), int(h), scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		w, h, 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		GetInternalLogger().Error("Failed to wrap SVG pixels", "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Error("Failed to upload SVG texture", "error", err)
		return nil
	}
	return texture
}

// PagePlaceholderTexture renders the built-in placeholder glyph at the
// given size, tinted with the theme's placeholder color.
func PagePlaceholderTexture(renderer *sdl.Renderer, size int32) *sdl.Texture {
	texture := RasterizeSVG(renderer, placeholderSVG, size, size)
	if texture == nil {
		return nil
	}
	tint := GetTheme().PlaceholderColor
	texture.SetColorMod(tint.R, tint.G, tint.B)
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture
}
