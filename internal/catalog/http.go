package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Veraticus/alembic/internal/common"
	"github.com/Veraticus/alembic/internal/model"
	"github.com/Veraticus/alembic/internal/service"
)

// maxCatalogBytes is the default cap on the size of a remote catalog.
const maxCatalogBytes = 32 << 20

// HTTPSource fetches a CSV or JSON catalog over HTTP. Catalogs larger than
// MaxBytes (maxCatalogBytes when zero) are rejected.
type HTTPSource struct {
	Client   *http.Client
	URL      string
	Format   Format
	Retry    service.RetryOptions
	MaxBytes int64
	report   LoadReport
}

// Describe implements service.CatalogSource.
func (s *HTTPSource) Describe() string {
	return s.URL
}

// Report returns the outcome of the last Load.
func (s *HTTPSource) Report() LoadReport {
	return s.report
}

// Load implements service.CatalogSource. Transport errors, 429, and 5xx
// responses are retried; other non-2xx responses fail immediately.
func (s *HTTPSource) Load(ctx context.Context) ([]model.Recipe, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	var (
		body        []byte
		contentType string
	)
	err := common.WithRetry(ctx, func() error {
		var fetchErr error
		body, contentType, fetchErr = s.fetch(ctx, client)
		return fetchErr
	}, s.Retry)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrCatalogLoad, s.URL, err)
	}

	format := s.Format
	if format == "" || format == FormatAuto {
		format = DetectFormat(s.URL)
		if strings.Contains(contentType, "json") {
			format = FormatJSON
		}
	}

	recipes, report, err := parse(bytes.NewReader(body), format)
	s.report = report
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrCatalogLoad, s.URL, err)
	}

	slog.Info("Fetched recipe catalog",
		"source", s.URL,
		"bytes", len(body),
		"recipes", len(recipes),
		"skipped", len(report.Skipped))
	return recipes, nil
}

func (s *HTTPSource) fetch(ctx context.Context, client *http.Client) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, "", &common.RetryableError{Err: err, Retryable: false}
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, "", &common.RetryableError{Err: ctx.Err(), Retryable: false}
		}
		return nil, "", &common.RetryableError{Err: err, Retryable: true}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, "", &common.RetryableError{Err: common.ErrRateLimit, Retryable: true}
	case resp.StatusCode >= 500:
		return nil, "", &common.RetryableError{Err: fmt.Errorf("server returned %s", resp.Status), Retryable: true}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, "", &common.RetryableError{Err: fmt.Errorf("server returned %s", resp.Status), Retryable: false}
	}

	limit := s.MaxBytes
	if limit <= 0 {
		limit = maxCatalogBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, "", &common.RetryableError{Err: fmt.Errorf("failed to read response: %w", err), Retryable: true}
	}
	if int64(len(data)) > limit {
		return nil, "", &common.RetryableError{Err: fmt.Errorf("%w: more than %d bytes", ErrCatalogTooLarge, limit), Retryable: false}
	}
	return data, resp.Header.Get("Content-Type"), nil
}
