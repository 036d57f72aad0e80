package canvas

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

const maxSubpixel float64 = 255.0

// Color is an RGB value with channels normally in [0,1]. Channels are not
// clamped on construction, only when converted to bytes.
type Color struct {
	R float64
	G float64
	B float64
}

var (
	Black   = Color{0, 0, 0}
	White   = Color{1, 1, 1}
	Red     = Color{1, 0, 0}
	Green   = Color{0, 1, 0}
	Blue    = Color{0, 0, 1}
	Magenta = Color{1, 0, 1}
	Cyan    = Color{0, 1, 1}
	Yellow  = Color{1, 1, 0}
	Navy    = Color{0, 0, 0.5}
	Teal    = Color{0, 0.5, 0.5}
	Olive   = Color{0.5, 0.5, 0}
	Gray    = Color{0.5, 0.5, 0.5}
)

var ColorModel = color.ModelFunc(colorConvert)

func colorConvert(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	return FromRGBA(c)
}

func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// FromHex decodes a packed 0xRRGGBB value. Bits above the low 24 are ignored.
func FromHex(hex uint32) Color {
	r := float64(hex >> 16 & 0xFF)
	g := float64(hex >> 8 & 0xFF)
	b := float64(hex & 0xFF)
	return Color{
		R: r / maxSubpixel,
		G: g / maxSubpixel,
		B: b / maxSubpixel,
	}
}

// FromRGBA converts any color.Color, ignoring alpha.
func FromRGBA(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
	}
}

// Named resolves an SVG 1.1 color keyword such as "black" or "steelblue",
// or a "#RRGGBB" hex string.
func Named(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if hex, ok := strings.CutPrefix(name, "#"); ok {
		if len(hex) != 6 {
			return Color{}, false
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, false
		}
		return FromHex(uint32(v)), true
	}

	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return FromRGBA(c), true
}

func (c Color) Red() float64   { return c.R }
func (c Color) Green() float64 { return c.G }
func (c Color) Blue() float64  { return c.B }

func normalize(subpixel float64) uint8 {
	return uint8(math.Round(clamp(subpixel, 0, 1) * maxSubpixel))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo || math.IsNaN(x) {
		return lo
	} else if x > hi {
		return hi
	}
	return x
}

// ByteTriple clamps every channel to [0,1], scales it to [0,255] and rounds
// half away from zero. It is the only conversion from Color to bytes.
func (c Color) ByteTriple() (uint8, uint8, uint8) {
	return normalize(c.R), normalize(c.G), normalize(c.B)
}

// RGBA implements color.Color on top of ByteTriple.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	r, g, b := c.ByteTriple()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}.RGBA()
}

func (c Color) String() string {
	r, g, b := c.ByteTriple()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
