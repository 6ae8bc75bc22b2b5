package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/meshgrid/internal/assets"
	"github.com/Faultbox/meshgrid/internal/logger"
	"github.com/Faultbox/meshgrid/internal/scatter"
)

// ViewingState places the loaded model once on entry and spins it every
// frame after.
type ViewingState struct {
	doc   *assets.Document
	scene *scatter.Scene
}

// NewViewingState creates a viewing state for doc.
func NewViewingState(doc *assets.Document, scene *scatter.Scene) *ViewingState {
	return &ViewingState{doc: doc, scene: scene}
}

// Name implements State.
func (s *ViewingState) Name() string { return "viewing" }

// Enter builds the scene from the loaded model.
func (s *ViewingState) Enter() error {
	if err := s.scene.Build(s.doc.Model); err != nil {
		return err
	}
	logger.Info("entering ViewingState",
		zap.String("model", s.doc.Path),
		zap.Int("instances", len(s.scene.Instances())))
	return nil
}

// Exit is called when leaving this state.
func (s *ViewingState) Exit() error {
	return nil
}

// Update advances every instance by dt seconds.
func (s *ViewingState) Update(dt float64) error {
	s.scene.Tick(float32(dt))
	return nil
}
