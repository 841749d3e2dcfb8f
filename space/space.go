// Package space converts between the coordinate systems a frame draws in:
// window pixels, normalized device coordinates, a fixed virtual screen for UI
// and the camera-relative world.
package space

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	nearPlane = -1
	farPlane  = 10
)

// Transform is a projection/view pair. View maps camera space into world
// space, so submissions go through Proj * View^-1.
type Transform struct {
	Proj mgl32.Mat4
	View mgl32.Mat4
}

// ScreenSpace is an orthographic transform over a virtual resolution with
// the origin at the bottom-left.
func ScreenSpace(width, height float32) Transform {
	return Transform{
		Proj: mgl32.Ortho(0, width, 0, height, nearPlane, farPlane),
		View: mgl32.Ident4(),
	}
}

// WorldSpace builds the gameplay transform for a window size, camera
// position and zoom factor.
func WorldSpace(window mgl32.Vec2, camera mgl32.Vec2, zoom float32) Transform {
	halfW, halfH := window.X()/2, window.Y()/2
	view := mgl32.Translate3D(camera.X(), camera.Y(), 0).
		Mul4(mgl32.Scale3D(1/zoom, 1/zoom, 1))
	return Transform{
		Proj: mgl32.Ortho(-halfW, halfW, -halfH, halfH, nearPlane, farPlane),
		View: view,
	}
}

// Clip returns the matrix taking a model-local point to NDC.
func (t Transform) Clip(model mgl32.Mat4) mgl32.Mat4 {
	return t.Proj.Mul4(t.View.Inv()).Mul4(model)
}

// unproject is View * Proj^-1.
func (t Transform) unproject() mgl32.Mat4 {
	return t.View.Mul4(t.Proj.Inv())
}

// NDCToWorld maps an NDC point into the space described by t.
func (t Transform) NDCToWorld(ndc mgl32.Vec2) mgl32.Vec2 {
	p := t.unproject().Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), 0, 1})
	return mgl32.Vec2{p.X(), p.Y()}
}

// WorldToNDC is the inverse of NDCToWorld.
func (t Transform) WorldToNDC(world mgl32.Vec2) mgl32.Vec2 {
	p := t.Clip(mgl32.Ident4()).Mul4x1(mgl32.Vec4{world.X(), world.Y(), 0, 1})
	return mgl32.Vec2{p.X(), p.Y()}
}

// PointerToWorld converts a bottom-left origin pixel position to the space
// described by t.
func (t Transform) PointerToWorld(pixels, window mgl32.Vec2) mgl32.Vec2 {
	return t.NDCToWorld(PixelsToNDC(pixels, window))
}

// PixelsToNDC maps window pixels (bottom-left origin, y up) to [-1, 1].
func PixelsToNDC(pixels, window mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		pixels.X()/(window.X()*0.5) - 1,
		pixels.Y()/(window.Y()*0.5) - 1,
	}
}

// NDCToPixels is the inverse of PixelsToNDC.
func NDCToPixels(ndc, window mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		(ndc.X() + 1) * window.X() * 0.5,
		(ndc.Y() + 1) * window.Y() * 0.5,
	}
}

// NDCRangeToTopLeft maps an NDC rectangle to window pixels with a top-left
// origin and y down, as raster backends expect.
func NDCRangeToTopLeft(r Range, window mgl32.Vec2) Range {
	lo := NDCToPixels(r.Min, window)
	hi := NDCToPixels(r.Max, window)
	return Range{
		Min: mgl32.Vec2{lo.X(), window.Y() - hi.Y()},
		Max: mgl32.Vec2{hi.X(), window.Y() - lo.Y()},
	}
}
