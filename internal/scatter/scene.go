package scatter

import (
	"go.uber.org/zap"

	"github.com/Faultbox/meshgrid/internal/logger"
)

// Settings configures a Scene.
type Settings struct {
	Layout Layout
	Seed   [32]byte
	Spin   Rotator
}

// DefaultSettings returns the ten column grid, the zero seed and a spin of
// one radian per second.
func DefaultSettings() Settings {
	return Settings{
		Layout: DefaultLayout(),
		Spin:   DefaultRotator(),
	}
}

// Scene owns the placed instances of one model.
type Scene struct {
	host      Host
	index     *Index
	placer    *Placer
	spin      Rotator
	instances []Instance
	placed    bool
}

// NewScene returns an empty scene reporting to host. A nil host records into
// a Recorder.
func NewScene(host Host, s Settings) *Scene {
	if host == nil {
		host = NewRecorder()
	}
	return &Scene{
		host:   host,
		index:  NewIndex(),
		placer: NewPlacer(s.Layout, s.Seed),
		spin:   s.Spin,
	}
}

// Build indexes m and spawns one instance per node. It runs once; later
// calls return ErrAlreadyPlaced. On error no instance is spawned and the
// index is left empty.
func (s *Scene) Build(m *Model) error {
	if s.placed {
		return ErrAlreadyPlaced
	}

	if err := s.index.Populate(m); err != nil {
		return err
	}
	instances, err := s.placer.Place(m, s.index)
	if err != nil {
		s.index.Reset()
		return err
	}

	for _, inst := range instances {
		s.host.Spawn(inst)
	}
	s.instances = instances
	s.placed = true

	logger.L().Info("Scene placed",
		zap.String("source", m.Source),
		zap.Int("instances", len(instances)),
		zap.Int("indexed", s.index.Len()))
	return nil
}

// Tick advances every instance by dt seconds.
func (s *Scene) Tick(dt float32) {
	s.spin.Tick(s.instances, dt, s.host)
}

// Placed reports whether Build has succeeded.
func (s *Scene) Placed() bool {
	return s.placed
}

// Index returns the name/geometry index.
func (s *Scene) Index() *Index {
	return s.index
}

// Instances returns a copy of the placed instances.
func (s *Scene) Instances() []Instance {
	return append([]Instance(nil), s.instances...)
}
