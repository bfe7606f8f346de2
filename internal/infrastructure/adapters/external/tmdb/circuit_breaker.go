package tmdb

import (
	"context"
	stderrors "errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
	"github.com/narwhalmedia/tracker/pkg/errors"
	"github.com/narwhalmedia/tracker/pkg/interfaces"
	"github.com/narwhalmedia/tracker/pkg/metrics"
)

// BreakerSettings tunes the circuit breaker around the client.
type BreakerSettings struct {
	MaxRequests         uint32        // probes allowed in half-open state
	Interval            time.Duration // closed state count reset period
	Timeout             time.Duration // open state duration before half-open
	ConsecutiveFailures uint32        // failures that open the circuit
}

// DefaultBreakerSettings returns the production breaker settings.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             30 * time.Second,
		ConsecutiveFailures: 5,
	}
}

// CircuitBreakerClient wraps Client so a failing provider is not hammered.
type CircuitBreakerClient struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[[]domain.Candidate]
}

// NewCircuitBreakerClient wraps client with a breaker named tmdb.
func NewCircuitBreakerClient(client *Client, settings BreakerSettings, logger interfaces.Logger) *CircuitBreakerClient {
	name := "tmdb"
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]domain.Candidate](gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
		},
		// a caller giving up is not a provider failure
		IsSuccessful: func(err error) bool {
			return err == nil || stderrors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state transition",
				interfaces.String("name", name),
				interfaces.String("from", from.String()),
				interfaces.String("to", to.String()))
			metrics.RecordBreakerTransition(name, from.String(), to.String(), stateToFloat(to))
		},
	})

	return &CircuitBreakerClient{client: client, cb: cb}
}

// SearchMovies runs the search through the breaker.
func (c *CircuitBreakerClient) SearchMovies(ctx context.Context, query string) ([]domain.Candidate, error) {
	candidates, err := c.cb.Execute(func() ([]domain.Candidate, error) {
		return c.client.SearchMovies(ctx, query)
	})
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.Lookup("metadata provider temporarily unavailable", err)
		}
		return nil, err
	}
	return candidates, nil
}

// State returns the current breaker state.
func (c *CircuitBreakerClient) State() gobreaker.State {
	return c.cb.State()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
