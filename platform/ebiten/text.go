package ebiten

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontMeasurer measures strings in basicfont's 7x13 face, scaled so one
// line is FontSize.Pixels() tall.
type FontMeasurer struct {
	face font.Face
}

func NewFontMeasurer() *FontMeasurer {
	return &FontMeasurer{face: basicfont.Face7x13}
}

func (m *FontMeasurer) Face() font.Face {
	return m.face
}

// lineMetrics returns the ascent and descent of the face in face pixels.
func (m *FontMeasurer) lineMetrics() (ascent, descent float32) {
	metrics := m.face.Metrics()
	return float32(metrics.Ascent.Ceil()), float32(metrics.Descent.Ceil())
}

func (m *FontMeasurer) MeasureText(text string, size draw.FontSize) draw.TextMetrics {
	ascent, descent := m.lineMetrics()
	scale := size.Pixels() / (ascent + descent)
	width := float32(font.MeasureString(m.face, text).Ceil())
	return draw.TextMetrics{
		VisualPosMin: mgl32.Vec2{0, -descent * scale},
		VisualSize:   mgl32.Vec2{width * scale, (ascent + descent) * scale},
	}
}
