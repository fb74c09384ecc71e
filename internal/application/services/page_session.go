package services

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/domain/entities"
	"github.com/reglet-dev/linkpage/internal/domain/values"
	"golang.org/x/sync/errgroup"
)

// documentSource is the part of DocumentLoader a session needs.
type documentSource interface {
	Load(ctx context.Context) (*entities.Document, error)
}

// avatarSource is the part of ProfileEnricher a session needs.
type avatarSource interface {
	Enrich(ctx context.Context, handle string) values.Avatar
}

// PageSession is the composition root of one page view. It runs the document
// load and the profile enrichment concurrently and owns the resulting state.
//
// Enrichment starts as soon as the document resolves: with the profile handle
// on success, or with no handle on failure. Completion order is not fixed.
//
// After Close, late results are dropped: the state no longer changes and
// OnChange is not called.
type PageSession struct {
	loader   documentSource
	enricher avatarSource
	logger   *slog.Logger
	onChange func(dto.PageState)
	cancel   context.CancelFunc
	done     chan struct{}

	state dto.PageState
	id    values.RenderID

	mu      sync.Mutex
	alive   atomic.Bool
	started atomic.Bool
}

// SessionOption configures a PageSession.
type SessionOption func(*PageSession)

// WithOnChange registers an observer called with a snapshot after every applied update.
func WithOnChange(fn func(dto.PageState)) SessionOption {
	return func(s *PageSession) {
		s.onChange = fn
	}
}

// NewPageSession creates a session in its initial loading state.
func NewPageSession(loader documentSource, enricher avatarSource, logger *slog.Logger, opts ...SessionOption) *PageSession {
	if logger == nil {
		logger = slog.Default()
	}

	id := values.NewRenderID()
	s := &PageSession{
		loader:   loader,
		enricher: enricher,
		logger:   logger.With("render_id", id.String()),
		done:     make(chan struct{}),
		state:    dto.InitialPageState(id.String()),
		id:       id,
	}
	s.alive.Store(true)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ID returns the session's render ID.
func (s *PageSession) ID() values.RenderID {
	return s.id
}

// Start launches both fetches. Calling Start more than once, or after Close,
// launches nothing.
func (s *PageSession) Start(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	if !s.alive.Load() {
		close(s.done)
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	handles := make(chan string, 1)

	var g errgroup.Group
	g.Go(func() error {
		s.loadDocument(ctx, handles)
		return nil
	})
	g.Go(func() error {
		s.enrichProfile(ctx, handles)
		return nil
	})

	go func() {
		_ = g.Wait()
		close(s.done)
	}()
}

func (s *PageSession) loadDocument(ctx context.Context, handles chan<- string) {
	doc, err := s.loader.Load(ctx)

	handle := ""
	if err == nil {
		handle = doc.Profile().ExternalHandle
	}
	handles <- handle
	close(handles)

	if err != nil {
		s.logger.Warn("document load failed", "error", err)
	}

	s.apply(func(st *dto.PageState) {
		st.DocumentLoading = false
		if err != nil {
			st.Error = err.Error()
			return
		}
		st.Document = doc
	})
}

func (s *PageSession) enrichProfile(ctx context.Context, handles <-chan string) {
	var handle string
	select {
	case handle = <-handles:
	case <-ctx.Done():
		return
	}

	avatar := values.NoAvatar()
	if handle != "" {
		avatar = s.enricher.Enrich(ctx, handle)
	}

	s.apply(func(st *dto.PageState) {
		st.Avatar = avatar
		st.AvatarLoading = false
	})
}

// apply mutates the state if the session is still alive.
func (s *PageSession) apply(update func(*dto.PageState)) {
	s.mu.Lock()
	if !s.alive.Load() {
		s.mu.Unlock()
		s.logger.Debug("session closed, dropping result")
		return
	}
	update(&s.state)
	snapshot := s.state
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(snapshot)
	}
}

// State returns a snapshot of the current state.
func (s *PageSession) State() dto.PageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Done is closed once both fetches have returned, whether or not their
// results were applied.
func (s *PageSession) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until both fetches settle or ctx ends.
func (s *PageSession) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close tears the session down. In-flight fetches are cancelled and any
// result that arrives afterwards is discarded.
func (s *PageSession) Close() {
	s.mu.Lock()
	s.alive.Store(false)
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
