package lighting

import (
	"testing"

	"github.com/Faultbox/meshgrid/pkg/math"
)

func TestAmbientLevel(t *testing.T) {
	tests := []struct {
		brightness float32
		want       float32
	}{
		{750, 0.3},
		{0, 0},
		{-10, 0},
		{2500, 1},
		{10000, 1},
	}
	for _, tt := range tests {
		got := AmbientLevel(tt.brightness)
		if d := got - tt.want; d > 1e-6 || d < -1e-6 {
			t.Errorf("AmbientLevel(%v) = %v, want %v", tt.brightness, got, tt.want)
		}
	}
}

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float32
		want     math.Vec3
	}{
		{"overhead", 0, 90, math.Vec3{Y: 1}},
		{"horizon south", 0, 0, math.Vec3{Z: 1}},
		{"horizon east", 90, 0, math.Vec3{X: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.lon, tt.lat)
			if !got.ApproxEqual(tt.want, 1e-6) {
				t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
			}
			if l := got.Length(); l < 0.999999 || l > 1.000001 {
				t.Errorf("length = %v, want 1", l)
			}
		})
	}
}

func TestNew(t *testing.T) {
	l := New(750, 45, 45)
	if l.Ambient < 0.299 || l.Ambient > 0.301 {
		t.Errorf("Ambient = %v, want 0.3", l.Ambient)
	}
	if l.Direction.Y <= 0 {
		t.Errorf("Direction %v should point above the horizon", l.Direction)
	}
}
