// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/meshgrid/pkg/math"
)

// LookAt is a fixed camera placed at Position and aimed at Target.
type LookAt struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	FovY float32 // radians
	Near float32
	Far  float32
}

// New returns a camera at position looking at target with +Y up and the
// given vertical field of view in degrees.
func New(position, target math.Vec3, fovDegrees float32) *LookAt {
	return &LookAt{
		Position: position,
		Target:   target,
		Up:       math.UnitY,
		FovY:     Radians(fovDegrees),
		Near:     0.1,
		Far:      1000.0,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *LookAt) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection for the given aspect
// ratio (width / height).
func (c *LookAt) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Forward returns the unit viewing direction.
func (c *LookAt) Forward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * float32(gomath.Pi/180)
}
