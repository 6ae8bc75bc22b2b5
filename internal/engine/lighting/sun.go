// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	stdmath "math"

	"github.com/Faultbox/meshgrid/pkg/math"
)

// FullBrightness is the ambient brightness treated as fully lit.
const FullBrightness = 2500

// Light is the scene's ambient term plus one directional light.
type Light struct {
	Ambient   float32   // [0, 1]
	Direction math.Vec3 // unit vector pointing towards the light
}

// New builds a light from an ambient brightness and sun angles in degrees.
func New(brightness, longitude, latitude float32) Light {
	return Light{
		Ambient:   AmbientLevel(brightness),
		Direction: SunDirection(longitude, latitude),
	}
}

// AmbientLevel maps a light brightness onto the shader's [0, 1] ambient term.
func AmbientLevel(brightness float32) float32 {
	return min(max(brightness/FullBrightness, 0), 1)
}

// SunDirection converts longitude/latitude angles to a light direction vector.
// Longitude is rotation around Y axis (0-360), latitude is elevation from horizon (0-90).
// Returns a normalized direction vector pointing towards the sun.
func SunDirection(longitude, latitude float32) math.Vec3 {
	// Convert degrees to radians
	lonRad := float64(longitude) * stdmath.Pi / 180.0
	latRad := float64(latitude) * stdmath.Pi / 180.0

	// Spherical to Cartesian conversion
	return math.Vec3{
		X: float32(stdmath.Cos(latRad) * stdmath.Sin(lonRad)),
		Y: float32(stdmath.Sin(latRad)),
		Z: float32(stdmath.Cos(latRad) * stdmath.Cos(lonRad)),
	}
}
