package render

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wudong/internal/domain/entity"
)

const (
	starCount   = 60
	gridSpacing = 40.0
	markerGap   = 80.0
)

var (
	colorSkyTop    = color.RGBA{10, 10, 30, 255}
	colorSkyBottom = color.RGBA{30, 15, 50, 255}
	colorGrid      = color.RGBA{60, 60, 120, 40}
	colorMarker    = color.RGBA{120, 120, 200, 120}
	colorSpeedLine = color.RGBA{100, 150, 255, 255}
)

type star struct {
	x, y  float64
	depth float64 // 0.2..1, nearer stars move faster
	size  float64
}

// Background is the scrolling parallax field behind the game
type Background struct {
	w, h   float64
	o      entity.Orientation
	stars  []star
	scroll float64
	cache  *Cache
}

// NewBackground creates a star field for a w x h screen
func NewBackground(w, h int, o entity.Orientation, rng *rand.Rand, cache *Cache) *Background {
	b := &Background{w: float64(w), h: float64(h), o: o, cache: cache}
	b.stars = make([]star, starCount)
	for i := range b.stars {
		b.stars[i] = star{
			x:     rng.Float64() * b.w,
			y:     rng.Float64() * b.h,
			depth: 0.2 + rng.Float64()*0.8,
			size:  0.5 + rng.Float64()*1.5,
		}
	}
	return b
}

// Scroll returns how far the field has moved
func (b *Background) Scroll() float64 {
	return b.scroll
}

// Update moves the field by the current scroll speed
func (b *Background) Update(speed float64) {
	b.scroll += speed
	for i := range b.stars {
		st := &b.stars[i]
		step := speed * st.depth * 0.5
		if b.o == entity.Horizontal {
			st.x -= step
			if st.x < 0 {
				st.x += b.w
			}
		} else {
			st.y += step
			if st.y > b.h {
				st.y -= b.h
			}
		}
	}
}

// Draw draws the gradient, stars, grid and edge markers
func (b *Background) Draw(dst *ebiten.Image) {
	dst.DrawImage(b.cache.Gradient(int(b.w), int(b.h), colorSkyTop, colorSkyBottom), nil)

	for _, st := range b.stars {
		fillCircle(dst, st.x, st.y, st.size, Fade(colorWhite, 0.3+0.7*st.depth))
	}

	off := math.Mod(b.scroll, gridSpacing)
	moff := math.Mod(b.scroll, markerGap)
	if b.o == entity.Horizontal {
		for x := gridSpacing - off; x < b.w; x += gridSpacing {
			fillRect(dst, x, 0, 1, b.h, colorGrid)
		}
		for y := gridSpacing; y < b.h; y += gridSpacing {
			fillRect(dst, 0, y, b.w, 1, colorGrid)
		}
		for x := -moff; x < b.w; x += markerGap {
			fillRect(dst, x, 2, 30, 3, colorMarker)
			fillRect(dst, x, b.h-5, 30, 3, colorMarker)
		}
	} else {
		for y := off - gridSpacing; y < b.h; y += gridSpacing {
			fillRect(dst, 0, y, b.w, 1, colorGrid)
		}
		for x := gridSpacing; x < b.w; x += gridSpacing {
			fillRect(dst, x, 0, 1, b.h, colorGrid)
		}
		for y := moff - markerGap; y < b.h; y += markerGap {
			fillRect(dst, 2, y, 3, 30, colorMarker)
			fillRect(dst, b.w-5, y, 3, 30, colorMarker)
		}
	}
}

// DrawScanlines lays the cached CRT overlay over the screen
func (b *Background) DrawScanlines(dst *ebiten.Image) {
	dst.DrawImage(b.cache.Scanlines(int(b.w), int(b.h)), nil)
}

// DrawSpeedLines draws faint streaks that thicken with speed
func DrawSpeedLines(dst *ebiten.Image, rng *rand.Rand, w, h float64, o entity.Orientation, speed float64) {
	intensity := math.Min(60, speed*8)
	if intensity < 10 {
		return
	}
	c := Fade(colorSpeedLine, intensity/255)
	for range int(speed * 3) {
		x, y := rng.Float64()*w, rng.Float64()*h
		length := 10 + rng.Float64()*(20+speed*5)
		if o == entity.Horizontal {
			line(dst, x, y, x-length, y, 1, c)
		} else {
			line(dst, x, y, x, y+length, 1, c)
		}
	}
}

// DrawBeam draws the x-ray beam filling r
func DrawBeam(dst *ebiten.Image, r entity.Rect, o entity.Orientation, frame int) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	outer := color.RGBA{100, 200, 255, 255}
	inner := color.RGBA{200, 240, 255, 255}
	wave := math.Sin(float64(frame)*0.3) * 3

	fillRect(dst, r.X, r.Y, r.W, r.H, Fade(outer, 0.45))
	if o == entity.Horizontal {
		fillRect(dst, r.X, r.Y+r.H/2-3+wave, r.W, 6, Fade(inner, 0.7))
	} else {
		fillRect(dst, r.X+r.W/2-3+wave, r.Y, 6, r.H, Fade(inner, 0.7))
	}
}
