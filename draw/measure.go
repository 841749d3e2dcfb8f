package draw

import "github.com/go-gl/mathgl/mgl32"

// FixedMeasurer measures text as if every glyph had the same advance, both
// given as fractions of the font height. It stands in for a real font where
// none is loaded.
type FixedMeasurer struct {
	Advance float32
	Ascent  float32
}

func (m FixedMeasurer) MeasureText(text string, font FontSize) TextMetrics {
	h := font.Pixels()
	n := float32(len([]rune(text)))
	return TextMetrics{
		VisualPosMin: mgl32.Vec2{0, 0},
		VisualSize:   mgl32.Vec2{n * m.Advance * h, m.Ascent * h},
	}
}
