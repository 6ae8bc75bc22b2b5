package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/meshgrid/pkg/math"
)

func TestNewDefaults(t *testing.T) {
	c := New(math.Vec3{X: -2, Y: 2.5, Z: 5}, math.Vec3{Y: 1}, 45)

	if c.Up != math.UnitY {
		t.Errorf("Up = %v, want +Y", c.Up)
	}
	if d := gomath.Abs(float64(c.FovY) - gomath.Pi/4); d > 1e-6 {
		t.Errorf("FovY = %v, want pi/4", c.FovY)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		t.Errorf("bad clip planes near=%v far=%v", c.Near, c.Far)
	}
}

func TestViewMatrixMapsTargetOntoAxis(t *testing.T) {
	c := New(math.Vec3{X: -2, Y: 2.5, Z: 5}, math.Vec3{Y: 1}, 45)
	view := c.ViewMatrix()

	p := view.TransformPoint(c.Target)
	dist := c.Position.Distance(c.Target)
	if !p.ApproxEqual(math.Vec3{Z: -dist}, 1e-4) {
		t.Errorf("target in view space = %v, want (0, 0, %v)", p, -dist)
	}
}

func TestForward(t *testing.T) {
	c := New(math.Vec3{Z: 5}, math.Vec3{}, 60)
	if got := c.Forward(); !got.ApproxEqual(math.Vec3{Z: -1}, 1e-6) {
		t.Errorf("Forward() = %v, want (0, 0, -1)", got)
	}
}

func TestProjectionBadAspect(t *testing.T) {
	c := New(math.Vec3{Z: 5}, math.Vec3{}, 45)
	if got, want := c.ProjectionMatrix(0), c.ProjectionMatrix(1); got != want {
		t.Errorf("ProjectionMatrix(0) should fall back to aspect 1")
	}
}
