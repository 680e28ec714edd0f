package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/linaank/web1/internal/domain"
	apperrors "github.com/linaank/web1/internal/platform/errors"
	"github.com/linaank/web1/internal/region"
)

// Observer receives evaluation outcomes, typically for metrics.
type Observer interface {
	ObserveEvaluation(hit bool, elapsed time.Duration)
	ObserveRejection(errType apperrors.ErrorType)
}

type noopObserver struct{}

func (noopObserver) ObserveEvaluation(bool, time.Duration) {}
func (noopObserver) ObserveRejection(apperrors.ErrorType) {}

// Service is the application layer. It owns the submit/history/clear use cases.
type Service struct {
	store    domain.SessionStore
	renderer domain.RowRenderer
	clock    clockwork.Clock
	observer Observer
}

// NewService creates the application layer service.
// observer may be nil.
func NewService(store domain.SessionStore, renderer domain.RowRenderer, clock clockwork.Clock, observer Observer) *Service {
	if observer == nil {
		observer = noopObserver{}
	}
	return &Service{
		store:    store,
		renderer: renderer,
		clock:    clock,
		observer: observer,
	}
}

// Submit validates the form, evaluates the point, stores the rendered row as
// the session's newest entry and returns it.
func (s *Service) Submit(ctx context.Context, sessionID string, form url.Values) (string, error) {
	q, err := ParseQuery(form)
	if err != nil {
		s.observer.ObserveRejection(apperrors.AsStructuredError(err).Type)
		return "", err
	}

	result := s.evaluate(q)
	row := s.renderer.Row(result)

	if err := s.store.Append(ctx, sessionID, row); err != nil {
		return "", apperrors.InternalError(fmt.Errorf("append row: %w", err)).
			WithField("session_id", sessionID)
	}

	s.observer.ObserveEvaluation(result.Hit, result.Elapsed)
	slog.DebugContext(ctx, "Point evaluated", "session_id", sessionID, "x", q.X, "y", q.Y, "r", q.R, "hit", result.Hit, "elapsed", result.Elapsed)
	return row, nil
}

// evaluate times the region test alone.
func (s *Service) evaluate(q domain.Query) domain.Result {
	start := s.clock.Now()
	hit := region.Evaluate(q)
	elapsed := s.clock.Since(start)

	return domain.Result{
		Query:   q,
		Hit:     hit,
		At:      s.clock.Now(),
		Elapsed: elapsed,
	}
}

// History returns the session's rows concatenated newest first.
func (s *Service) History(ctx context.Context, sessionID string) (string, error) {
	rows, err := s.store.Rows(ctx, sessionID)
	if err != nil {
		return "", apperrors.InternalError(fmt.Errorf("load rows: %w", err)).
			WithField("session_id", sessionID)
	}
	return strings.Join(rows, ""), nil
}

// Clear drops the session and all of its rows.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return apperrors.InternalError(fmt.Errorf("clear session: %w", err)).
			WithField("session_id", sessionID)
	}
	slog.DebugContext(ctx, "Session cleared", "session_id", sessionID)
	return nil
}
