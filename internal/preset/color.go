package preset

import (
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// minVividSpread is the minimum max-min channel distance for a pad
// color; anything below reads as gray on the pad grid.
const minVividSpread = 80

// ColorSource produces pad display colors. Injectable so tests and
// seeded runs get deterministic output.
type ColorSource interface {
	Next() colorful.Color
}

// RandomColors draws uniformly random RGB triples and resamples until
// the color is vivid.
type RandomColors struct {
	rng *rand.Rand
}

// NewRandomColors creates a color source. A zero seed means
// time-based seeding.
func NewRandomColors(seed int64) *RandomColors {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomColors{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next vivid pad color.
func (c *RandomColors) Next() colorful.Color {
	for {
		col := colorful.Color{
			R: float64(c.rng.Intn(256)) / 255,
			G: float64(c.rng.Intn(256)) / 255,
			B: float64(c.rng.Intn(256)) / 255,
		}
		if Vivid(col) {
			return col
		}
	}
}

// Vivid reports whether a color is far enough from gray: the spread
// between its brightest and darkest channel must reach minVividSpread.
func Vivid(col colorful.Color) bool {
	r, g, b := col.RGB255()
	return int(max(r, g, b))-int(min(r, g, b)) >= minVividSpread
}

// PackARGB packs a color at full opacity as 0xAARRGGBB reinterpreted
// as a signed 32-bit integer, the on-disk colour representation.
func PackARGB(col colorful.Color) int32 {
	r, g, b := col.RGB255()
	return int32(uint32(0xff)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}
