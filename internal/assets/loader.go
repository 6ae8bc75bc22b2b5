package assets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshgrid/internal/logger"
)

// Phase is the load latch. It only moves from Loading to Loaded.
type Phase int

const (
	Loading Phase = iota
	Loaded
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ErrNotStarted is returned by Poll and Wait before Start.
var ErrNotStarted = errors.New("loader not started")

type result struct {
	doc *Document
	err error
}

// Loader decodes one model file on a background goroutine. Poll and Wait
// are meant for a single caller, normally the frame loop.
type Loader struct {
	path  string
	phase Phase
	done  chan result
	doc   *Document
	err   error

	decode func(path string) (*Document, error)
}

// NewLoader returns an idle loader.
func NewLoader() *Loader {
	return &Loader{decode: Decode}
}

// Start begins decoding path. A loader can only be started once.
func (l *Loader) Start(path string) error {
	if l.done != nil {
		return fmt.Errorf("loader already started for %s", l.path)
	}
	l.path = path
	l.done = make(chan result, 1)

	decode := l.decode
	go func() {
		start := time.Now()
		doc, err := decode(path)
		if err == nil {
			logger.Info("Model decoded",
				zap.String("path", path),
				zap.Int("nodes", doc.Model.Len()),
				zap.Duration("took", time.Since(start)))
		}
		l.done <- result{doc: doc, err: err}
	}()
	return nil
}

// Path returns the path passed to Start.
func (l *Loader) Path() string {
	return l.path
}

// Phase returns the latch state without checking for completion.
func (l *Loader) Phase() Phase {
	return l.phase
}

// Poll checks for completion without blocking. The document is returned once
// the phase is Loaded. A decode failure keeps the phase at Loading and is
// returned on every call.
func (l *Loader) Poll() (Phase, *Document, error) {
	if l.done == nil {
		return Loading, nil, ErrNotStarted
	}
	if l.phase == Loading && l.err == nil {
		select {
		case r := <-l.done:
			l.finish(r)
		default:
		}
	}
	return l.phase, l.doc, l.err
}

// Wait blocks until decoding finishes or ctx is done.
func (l *Loader) Wait(ctx context.Context) (*Document, error) {
	if l.done == nil {
		return nil, ErrNotStarted
	}
	if l.phase == Loading && l.err == nil {
		select {
		case r := <-l.done:
			l.finish(r)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return l.doc, l.err
}

func (l *Loader) finish(r result) {
	if r.err != nil {
		l.err = fmt.Errorf("loading model %s: %w", l.path, r.err)
		return
	}
	l.doc = r.doc
	l.phase = Loaded
}
