package vis

import (
	"github.com/lucasb-eyer/go-colorful"
)

// DistinctColors returns n visually distinct uniform colors, useful for
// tagging the depth maps of a shared scene. Colors are deterministic: evenly
// spaced hues at full saturation.
func DistinctColors(n int) [][3]uint8 {
	out := make([][3]uint8, 0, n)
	for i := 0; i < n; i++ {
		c := colorful.Hsv(float64(i)*360/float64(n), 0.8, 1)
		r, g, b := c.RGB255()
		out = append(out, [3]uint8{r, g, b})
	}
	return out
}
