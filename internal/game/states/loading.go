package states

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshgrid/internal/assets"
	"github.com/Faultbox/meshgrid/internal/logger"
)

// ModelSource is the part of assets.Loader the loading state needs.
type ModelSource interface {
	Poll() (assets.Phase, *assets.Document, error)
	Path() string
}

// LoadingState waits for the model to finish decoding, then switches to the
// state built by next.
type LoadingState struct {
	source  ModelSource
	manager *Manager
	next    func(doc *assets.Document) State

	Phase   assets.Phase
	Elapsed time.Duration

	startTime time.Time
}

// NewLoadingState creates a new loading state.
func NewLoadingState(source ModelSource, manager *Manager, next func(*assets.Document) State) *LoadingState {
	return &LoadingState{
		source:  source,
		manager: manager,
		next:    next,
	}
}

// Name implements State.
func (s *LoadingState) Name() string { return "loading" }

// Enter is called when entering this state.
func (s *LoadingState) Enter() error {
	s.startTime = time.Now()
	s.Phase = assets.Loading
	logger.Info("entering LoadingState", zap.String("model", s.source.Path()))
	return nil
}

// Exit is called when leaving this state.
func (s *LoadingState) Exit() error {
	return nil
}

// Update polls the loader. A decode failure is returned as fatal.
func (s *LoadingState) Update(dt float64) error {
	s.Elapsed = time.Since(s.startTime)
	if s.Phase == assets.Loaded {
		return nil
	}

	phase, doc, err := s.source.Poll()
	if err != nil {
		return err
	}
	if phase != assets.Loaded {
		return nil
	}

	s.Phase = assets.Loaded
	logger.Info("Model ready",
		zap.String("model", s.source.Path()),
		zap.Duration("elapsed", s.Elapsed))
	s.manager.Change(s.next(doc))
	return nil
}
