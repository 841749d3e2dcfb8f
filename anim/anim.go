// Package anim provides frame-rate independent smoothing used by the camera
// and UI panels.
package anim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the distance at which a smoothed value snaps to its target.
const Epsilon = 0.001

// AlmostEquals reports whether a and b are within epsilon of each other.
func AlmostEquals(a, b, epsilon float32) bool {
	return float32(math.Abs(float64(a-b))) <= epsilon
}

// ToTarget moves value toward target by 1-2^(-rate*dt) of the remaining
// distance. It returns true once value equals target. Far from the origin a
// step can round away to nothing before the gap drops under Epsilon; the
// value snaps then too.
func ToTarget(value *float32, target float32, dt float64, rate float32) bool {
	step := (target - *value) * float32(1.0-math.Exp2(-float64(rate)*dt))
	next := *value + step
	if AlmostEquals(next, target, Epsilon) || (step != 0 && next == *value) {
		*value = target
		return true
	}
	*value = next
	return false
}

// Vec2ToTarget applies ToTarget to each component of value.
func Vec2ToTarget(value *mgl32.Vec2, target mgl32.Vec2, dt float64, rate float32) bool {
	reachedX := ToTarget(&value[0], target[0], dt, rate)
	reachedY := ToTarget(&value[1], target[1], dt, rate)
	return reachedX && reachedY
}

// SinBreathe maps sin(t*rate) into [0, 1].
func SinBreathe(t float64, rate float64) float32 {
	return float32((math.Sin(t*rate) + 1) / 2)
}

// Channel is an animated alpha with the value it is heading toward.
type Channel struct {
	Value  float32
	Target float32
}

// Set points the channel at 1 when on, 0 otherwise.
func (c *Channel) Set(on bool) {
	if on {
		c.Target = 1
	} else {
		c.Target = 0
	}
}

// Step advances Value toward Target.
func (c *Channel) Step(dt float64, rate float32) {
	ToTarget(&c.Value, c.Target, dt, rate)
}

// Enabled gates interaction on the target rather than the animated value, so
// a panel accepts input as soon as it starts opening.
func (c Channel) Enabled() bool {
	return c.Target == 1
}

// Visible reports whether anything of the panel should be drawn.
func (c Channel) Visible() bool {
	return c.Value > 0 || c.Target > 0
}
