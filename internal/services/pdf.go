package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"DF-DSGNR/internal/design"

	"github.com/starwalkn/gotenberg-go-client/v8"
	"github.com/starwalkn/gotenberg-go-client/v8/document"
)

type PDFService struct {
	client  *gotenberg.Client
	timeout time.Duration
}

func NewPDFService(gotenbergURL string, timeoutStr string) (*PDFService, error) {
	// Parse timeout from configuration
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		fmt.Printf("Warning: failed to parse timeout '%s', using default 30s: %v\n", timeoutStr, err)
	}

	// Create HTTP client with the configured timeout
	httpClient := &http.Client{
		Timeout: timeout,
	}

	client, err := gotenberg.NewClient(gotenbergURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gotenberg client: %w", err)
	}

	return &PDFService{
		client:  client,
		timeout: timeout,
	}, nil
}

// ConvertPreviewToPDF renders a standalone preview page through the
// Chromium route. Paper dimensions follow the design's page setup; request
// margins stay zero because the compiled styles carry the page padding.
func (s *PDFService) ConvertPreviewToPDF(ctx context.Context, html string, page design.PageSetup) (io.ReadCloser, error) {
	return s.convertWithRetry(ctx, html, page, 3)
}

func (s *PDFService) convertWithRetry(ctx context.Context, html string, page design.PageSetup, maxRetries int) (io.ReadCloser, error) {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		// Create a new context with the configured timeout for each attempt
		convertCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		index, err := document.FromString("index.html", html)
		if err != nil {
			return nil, fmt.Errorf("failed to create document from HTML: %w", err)
		}

		req := gotenberg.NewHTMLRequest(index)
		req.PaperSize(gotenberg.PaperDimensions{
			Width:  page.Width,
			Height: page.Height,
			Unit:   gotenberg.MM,
		})
		req.Margins(gotenberg.NoMargins)
		req.PrintBackground()

		resp, err := s.client.Send(convertCtx, req)
		if err == nil {
			return resp.Body, nil
		}

		lastErr = err
		fmt.Printf("PDF conversion attempt %d/%d failed: %v\n", attempt, maxRetries, err)

		// If this is not the last attempt, wait before retrying
		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}

	return nil, fmt.Errorf("failed to convert preview after %d attempts: %w", maxRetries, lastErr)
}

func (s *PDFService) Close() error {
	// Gotenberg client doesn't need explicit closing
	return nil
}
