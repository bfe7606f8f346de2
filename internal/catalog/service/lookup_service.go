package service

import (
	"context"
	"strings"
	"time"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
	"github.com/narwhalmedia/tracker/pkg/errors"
	"github.com/narwhalmedia/tracker/pkg/interfaces"
	"github.com/narwhalmedia/tracker/pkg/metrics"
)

// LookupService proxies metadata searches so the provider credential
// stays on the server. Successful responses are cached per query.
type LookupService struct {
	provider Provider
	cache    interfaces.Cache
	ttl      time.Duration
	logger   interfaces.Logger
}

// NewLookupService creates a lookup service. A nil provider makes every
// non-empty search fail as Unavailable; a zero ttl disables the cache.
func NewLookupService(provider Provider, cache interfaces.Cache, ttl time.Duration, logger interfaces.Logger) *LookupService {
	return &LookupService{
		provider: provider,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// Enabled reports whether a provider is configured.
func (s *LookupService) Enabled() bool {
	return s.provider != nil
}

// Search returns prefill candidates for query.
func (s *LookupService) Search(ctx context.Context, query string) ([]domain.Candidate, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		metrics.RecordLookup("empty", 0)
		return []domain.Candidate{}, nil
	}
	if s.provider == nil {
		return nil, errors.Unavailable("metadata lookup is not configured")
	}

	key := "lookup:" + strings.ToLower(q)
	if s.caching() {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			if candidates, ok := cached.([]domain.Candidate); ok {
				metrics.RecordLookup("cache_hit", 0)
				return candidates, nil
			}
		}
	}

	start := time.Now()
	candidates, err := s.provider.SearchMovies(ctx, q)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordLookup("error", elapsed)
		s.logger.Warn("Metadata lookup failed",
			interfaces.String("query", q),
			interfaces.Error(err))
		if errors.IsLookup(err) {
			return nil, err
		}
		return nil, errors.Lookup("metadata lookup failed", err)
	}
	if candidates == nil {
		candidates = []domain.Candidate{}
	}
	metrics.RecordLookup("success", elapsed)

	if s.caching() {
		if err := s.cache.Set(ctx, key, candidates, s.ttl); err != nil {
			s.logger.Warn("Failed to cache lookup", interfaces.Error(err))
		}
	}

	s.logger.Debug("Metadata lookup",
		interfaces.String("query", q),
		interfaces.Int("results", len(candidates)),
		interfaces.Duration("duration", elapsed))

	return candidates, nil
}

func (s *LookupService) caching() bool {
	return s.cache != nil && s.ttl > 0
}
