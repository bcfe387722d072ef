package internal

import "github.com/veandco/go-sdl2/sdl"

// defaultMaxPageTextures covers the resident window plus a little slack
// for pages evicted from the window but still animating off screen.
const defaultMaxPageTextures = 5

// PageTextureCache holds rendered page textures keyed by page index, with
// LRU eviction. The paged container's window logic decides which pages are
// alive; this cache only bounds how many rendered textures stick around.
type PageTextureCache struct {
	textures map[int]*sdl.Texture
	order    []int // tracks use order for LRU eviction
	maxSize  int
}

func NewPageTextureCache() *PageTextureCache {
	return NewPageTextureCacheWithSize(defaultMaxPageTextures)
}

func NewPageTextureCacheWithSize(maxSize int) *PageTextureCache {
	return &PageTextureCache{
		textures: make(map[int]*sdl.Texture),
		order:    make([]int, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Get returns the texture for a page, or nil. A hit refreshes the page's
// LRU position.
func (c *PageTextureCache) Get(page int) *sdl.Texture {
	if texture, exists := c.textures[page]; exists {
		c.moveToEnd(page)
		return texture
	}
	return nil
}

// Set stores a texture for a page, evicting (and destroying) the least
// recently used texture when full.
func (c *PageTextureCache) Set(page int, texture *sdl.Texture) {
	if _, exists := c.textures[page]; exists {
		c.textures[page] = texture
		c.moveToEnd(page)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[page] = texture
	c.order = append(c.order, page)
}

// Invalidate destroys and forgets the texture for one page, if present.
func (c *PageTextureCache) Invalidate(page int) {
	texture, exists := c.textures[page]
	if !exists {
		return
	}
	texture.Destroy()
	delete(c.textures, page)
	for i, p := range c.order {
		if p == page {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *PageTextureCache) moveToEnd(page int) {
	for i, p := range c.order {
		if p == page {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, page)
			return
		}
	}
}

func (c *PageTextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

// Destroy releases every cached texture.
func (c *PageTextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[int]*sdl.Texture)
	c.order = c.order[:0]
}
