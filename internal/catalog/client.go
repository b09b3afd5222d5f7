// AngelaMos | 2026
// client.go

// Package catalog reads product metadata from the sibling product service.
//
// Every call runs under a fixed timeout and a circuit breaker. Callers that
// only need best-effort metadata use Products, which turns any failure into
// an empty result.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/carterperez-dev/templates/review-insights/internal/config"
	"github.com/carterperez-dev/templates/review-insights/internal/core"
)

const (
	breakerName     = "product-catalog"
	maxResponseSize = 8 << 20
)

var ErrDisabled = errors.New("catalog: base url not configured")

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category_name"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[[]Product]
	logger     *slog.Logger
}

func NewClient(cfg config.CatalogConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	minReqs := cfg.BreakerMinReqs
	if minReqs == 0 {
		minReqs = 5
	}

	core.CatalogBreakerState.Set(0)

	cb := gobreaker.NewCircuitBreaker[[]Product](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerTimeout,
		// canceled callers do not count against the catalog
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minReqs {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
			core.CatalogBreakerState.Set(stateValue(to))
		},
	})

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cb:         cb,
		logger:     logger,
	}
}

// Fetch lists every product in the catalog.
func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	if c.baseURL == "" {
		return nil, ErrDisabled
	}

	products, err := c.cb.Execute(func() ([]Product, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState),
			errors.Is(err, gobreaker.ErrTooManyRequests):
			core.CatalogRequests.WithLabelValues("rejected").Inc()
		case errors.Is(err, context.Canceled):
			core.CatalogRequests.WithLabelValues("canceled").Inc()
		default:
			core.CatalogRequests.WithLabelValues("failure").Inc()
		}
		return nil, err
	}

	core.CatalogRequests.WithLabelValues("success").Inc()
	return products, nil
}

// Products returns the catalog indexed by product id. Failures are logged
// and yield an empty map.
func (c *Client) Products(ctx context.Context) map[int64]Product {
	products, err := c.Fetch(ctx)
	if err != nil {
		if !errors.Is(err, ErrDisabled) {
			c.logger.Warn("product catalog unavailable", "error", err)
		}
		return map[int64]Product{}
	}

	index := make(map[int64]Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index
}

// State reports the breaker state: closed, half-open or open.
func (c *Client) State() string {
	return c.cb.State().String()
}

func (c *Client) fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products/", nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() //nolint:errcheck // response already consumed
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog request: unexpected status %d", resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	return products, nil
}

func stateValue(state gobreaker.State) float64 {
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
