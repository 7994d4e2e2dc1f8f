package handler

import (
	"strconv"
	"strings"

	"stellar-payout/config"
	"stellar-payout/internal/core/domain"
	"stellar-payout/internal/core/ports"
	"stellar-payout/pkg/apperror"
	"stellar-payout/pkg/response"

	"github.com/gin-gonic/gin"
)

// DistributionHandler handles the distribution pipeline endpoint.
type DistributionHandler struct {
	svc      ports.DistributionService
	defaults config.DistributionConfig
}

// NewDistributionHandler creates a new DistributionHandler.
func NewDistributionHandler(svc ports.DistributionService, defaults config.DistributionConfig) *DistributionHandler {
	return &DistributionHandler{svc: svc, defaults: defaults}
}

// Start handles GET /start. Query parameters: receivers (count) and amounts
// (comma-separated); both fall back to configured defaults.
func (h *DistributionHandler) Start(c *gin.Context) {
	count := h.defaults.DefaultReceivers
	if raw := c.Query("receivers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, apperror.Validation("receivers must be a positive integer"))
			return
		}
		count = n
	}

	amounts := h.defaults.DefaultAmountList()
	if raw := c.Query("amounts"); raw != "" {
		amounts = splitAmounts(raw)
	}

	result, err := h.svc.Run(c.Request.Context(), domain.DistributionRequest{
		ReceiverCount: count,
		Amounts:       amounts,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// splitAmounts splits a comma-separated amount list, dropping empty entries.
func splitAmounts(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
