package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"poblaciones/internal/logger"
	"poblaciones/internal/models"
)

// ErrLoadFailed is the only failure LoadCountries reports to its caller
var ErrLoadFailed = errors.New("something bad happened; please try again later")

// CountrySource performs a single attempt at fetching the country list
type CountrySource interface {
	Fetch(ctx context.Context) ([]models.CountryRecord, error)
}

// HTTPCountrySource fetches the full country list with one GET and no query parameters
type HTTPCountrySource struct {
	endpoint   string
	httpClient *http.Client
}

// NewHTTPCountrySource creates a source for endpoint. A zero timeout leaves the client without one.
func NewHTTPCountrySource(endpoint string, timeout time.Duration) *HTTPCountrySource {
	return &HTTPCountrySource{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch issues the GET and decodes the JSON array
func (s *HTTPCountrySource) Fetch(ctx context.Context) ([]models.CountryRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, s.endpoint)
	}

	var records []models.CountryRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return records, nil
}

// LoadStats summarises the calls made through a CountryService
type LoadStats struct {
	Calls        int
	Failures     int
	Attempts     int
	LastAttempts int
	LastDuration time.Duration
	LastSuccess  time.Time
}

// CountryService wraps a CountrySource with the retry policy and failure normalization
type CountryService struct {
	source     CountrySource
	maxRetries int
	logger     logger.Logger

	mu    sync.Mutex
	stats LoadStats
}

// NewCountryService creates a service that makes at most 1+maxRetries attempts per call
func NewCountryService(source CountrySource, maxRetries int, log logger.Logger) *CountryService {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	return &CountryService{
		source:     source,
		maxRetries: maxRetries,
		logger:     log,
	}
}

// LoadCountries runs one logical load. Every call gets its own retry budget.
// On exhaustion the underlying error is logged and ErrLoadFailed returned.
func (cs *CountryService) LoadCountries(ctx context.Context) ([]models.CountryRecord, error) {
	startTime := time.Now()
	maxAttempts := cs.maxRetries + 1

	var lastErr error
	attempts := 0
	for attempts < maxAttempts {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}

		attempts++
		records, err := cs.source.Fetch(ctx)
		if err == nil {
			cs.recordCall(attempts, time.Since(startTime), true)
			cs.logger.Debug("CountryService", "countries fetched", map[string]interface{}{
				"records":  len(records),
				"attempts": attempts,
			})
			return records, nil
		}

		lastErr = err
		cs.logger.Warning("CountryService", "fetch attempt failed", map[string]interface{}{
			"attempt":      attempts,
			"max_attempts": maxAttempts,
			"error":        err.Error(),
		})
	}

	cs.recordCall(attempts, time.Since(startTime), false)
	cs.logger.Error("CountryService", fmt.Errorf("loading countries: %w", lastErr), map[string]interface{}{
		"attempts": attempts,
	})

	return nil, ErrLoadFailed
}

// GetLoadStats returns a snapshot of the call statistics
func (cs *CountryService) GetLoadStats() LoadStats {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.stats
}

func (cs *CountryService) recordCall(attempts int, duration time.Duration, ok bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.stats.Calls++
	cs.stats.Attempts += attempts
	cs.stats.LastAttempts = attempts
	cs.stats.LastDuration = duration
	if ok {
		cs.stats.LastSuccess = time.Now()
	} else {
		cs.stats.Failures++
	}
}
