package scatter

import "github.com/Faultbox/meshgrid/pkg/math"

// Layout places instance i on a grid of Columns columns, shifted by Offset.
type Layout struct {
	Columns int
	Offset  math.Vec3
}

// DefaultLayout is ten columns shifted by (3, 1, 0).
func DefaultLayout() Layout {
	return Layout{
		Columns: 10,
		Offset:  math.Vec3{X: 3, Y: 1, Z: 0},
	}
}

// Position returns (i mod Columns - Offset.X, i div Columns - Offset.Y, Offset.Z).
func (l Layout) Position(i int) math.Vec3 {
	cols := l.Columns
	if cols < 1 {
		cols = 1
	}
	return math.Vec3{
		X: float32(i%cols) - l.Offset.X,
		Y: float32(i/cols) - l.Offset.Y,
		Z: l.Offset.Z,
	}
}
