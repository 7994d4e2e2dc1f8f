package horizon

import (
	"context"
	"fmt"
	"net/http"
)

// HealthCheck implements ports.HealthChecker for the Horizon endpoint.
type HealthCheck struct {
	url        string
	httpClient HTTPClient
}

// NewHealthCheck creates a Horizon health checker.
func NewHealthCheck(url string, httpClient HTTPClient) *HealthCheck {
	return &HealthCheck{url: url, httpClient: httpClient}
}

// Ping checks Horizon reachability via its root resource.
func (h *HealthCheck) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return err
	}
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("horizon returned %d", resp.StatusCode)
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "horizon"
}
