package space

import "github.com/go-gl/mathgl/mgl32"

// Quad is four corners of a submitted draw, in NDC unless stated otherwise.
type Quad struct {
	BottomLeft  mgl32.Vec2
	BottomRight mgl32.Vec2
	TopLeft     mgl32.Vec2
	TopRight    mgl32.Vec2
}

// QuadFromMatrix returns the corners of a size-sized rectangle pushed
// through m.
func QuadFromMatrix(m mgl32.Mat4, size mgl32.Vec2) Quad {
	corner := func(x, y float32) mgl32.Vec2 {
		p := m.Mul4x1(mgl32.Vec4{x, y, 0, 1})
		return mgl32.Vec2{p.X(), p.Y()}
	}
	return Quad{
		BottomLeft:  corner(0, 0),
		BottomRight: corner(size.X(), 0),
		TopLeft:     corner(0, size.Y()),
		TopRight:    corner(size.X(), size.Y()),
	}
}

// Range returns the axis-aligned bounds of q.
func (q Quad) Range() Range {
	r := Range{Min: q.BottomLeft, Max: q.BottomLeft}
	for _, p := range [...]mgl32.Vec2{q.BottomRight, q.TopLeft, q.TopRight} {
		r.Min = mgl32.Vec2{min(r.Min.X(), p.X()), min(r.Min.Y(), p.Y())}
		r.Max = mgl32.Vec2{max(r.Max.X(), p.X()), max(r.Max.Y(), p.Y())}
	}
	return r
}

// QuadToScreen maps each corner of an NDC quad through View * Proj^-1. With
// a screen-space transform bound this yields virtual-screen coordinates.
func QuadToScreen(q Quad, t Transform) Quad {
	return Quad{
		BottomLeft:  t.NDCToWorld(q.BottomLeft),
		BottomRight: t.NDCToWorld(q.BottomRight),
		TopLeft:     t.NDCToWorld(q.TopLeft),
		TopRight:    t.NDCToWorld(q.TopRight),
	}
}

// Range is an axis-aligned rectangle.
type Range struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// Contains reports whether p lies inside r, edges included.
func (r Range) Contains(p mgl32.Vec2) bool {
	return p.X() >= r.Min.X() && p.X() <= r.Max.X() &&
		p.Y() >= r.Min.Y() && p.Y() <= r.Max.Y()
}

func (r Range) Center() mgl32.Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Range) Size() mgl32.Vec2 {
	return r.Max.Sub(r.Min)
}
