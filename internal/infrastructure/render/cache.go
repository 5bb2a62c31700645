package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type gradientKey struct {
	w, h        int
	top, bottom color.RGBA
}

type sizeKey struct {
	w, h int
}

// Cache keeps full-screen images that are expensive to rebuild. Scenes
// clear it when the orientation, and with it the screen size, changes.
type Cache struct {
	gradients map[gradientKey]*ebiten.Image
	scanlines map[sizeKey]*ebiten.Image
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{
		gradients: make(map[gradientKey]*ebiten.Image),
		scanlines: make(map[sizeKey]*ebiten.Image),
	}
}

// Gradient returns a vertical gradient from top to bottom, building it once
// per size and colour pair
func (c *Cache) Gradient(w, h int, top, bottom color.RGBA) *ebiten.Image {
	w, h = max(w, 1), max(h, 1)
	key := gradientKey{w: w, h: h, top: top, bottom: bottom}
	if img, ok := c.gradients[key]; ok {
		return img
	}

	img := ebiten.NewImage(w, h)
	for y := range h {
		fillRect(img, 0, float64(y), float64(w), 1, Lerp(top, bottom, float64(y)/float64(h)))
	}
	c.gradients[key] = img
	return img
}

// Scanlines returns a translucent CRT line overlay of the given size
func (c *Cache) Scanlines(w, h int) *ebiten.Image {
	w, h = max(w, 1), max(h, 1)
	key := sizeKey{w: w, h: h}
	if img, ok := c.scanlines[key]; ok {
		return img
	}

	img := ebiten.NewImage(w, h)
	for y := 0; y < h; y += 3 {
		fillRect(img, 0, float64(y), float64(w), 1, color.RGBA{0, 0, 0, 25})
	}
	c.scanlines[key] = img
	return img
}

// Len returns how many images are cached
func (c *Cache) Len() int {
	return len(c.gradients) + len(c.scanlines)
}

// Clear drops and disposes every cached image
func (c *Cache) Clear() {
	for k, img := range c.gradients {
		img.Deallocate()
		delete(c.gradients, k)
	}
	for k, img := range c.scanlines {
		img.Deallocate()
		delete(c.scanlines, k)
	}
}
