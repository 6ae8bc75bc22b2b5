package scatter

import "github.com/Faultbox/meshgrid/pkg/math"

// Instance is one placed copy of a geometry.
type Instance struct {
	ID       int
	Source   int // index into Model.Nodes
	Name     string
	Geometry Geometry
	Position math.Vec3
	Initial  math.Quat
	Rotation math.Quat
}

// Host receives instances and their orientation updates.
type Host interface {
	Spawn(inst Instance)
	Orient(id int, q math.Quat)
}

// Recorder is an in-memory Host.
type Recorder struct {
	Spawned   []Instance
	Rotations map[int]math.Quat
	Orients   int
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Rotations: make(map[int]math.Quat)}
}

// Spawn records inst.
func (r *Recorder) Spawn(inst Instance) {
	r.Spawned = append(r.Spawned, inst)
	r.Rotations[inst.ID] = inst.Rotation
}

// Orient records the latest orientation of id.
func (r *Recorder) Orient(id int, q math.Quat) {
	r.Rotations[id] = q
	r.Orients++
}
