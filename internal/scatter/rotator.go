package scatter

import stdmath "math"

// Rotator spins instances about their local X and Y axes.
type Rotator struct {
	RateX float32 // rad/s
	RateY float32 // rad/s
}

// DefaultRotator turns one radian per second on each axis.
func DefaultRotator() Rotator {
	return Rotator{RateX: 1, RateY: 1}
}

// Tick applies dt seconds of rotation to every instance, X first, then Y,
// and reports each new orientation to host. Negative or non-finite dt does
// nothing.
func (r Rotator) Tick(instances []Instance, dt float32, host Host) {
	if !(dt > 0) || stdmath.IsInf(float64(dt), 1) {
		return
	}
	ax := dt * r.RateX
	ay := dt * r.RateY

	for i := range instances {
		inst := &instances[i]
		inst.Rotation = inst.Rotation.RotateLocalX(ax).RotateLocalY(ay)
		if host != nil {
			host.Orient(inst.ID, inst.Rotation)
		}
	}
}
