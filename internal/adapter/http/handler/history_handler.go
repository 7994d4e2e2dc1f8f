package handler

import (
	"strconv"

	"stellar-payout/internal/core/domain"
	"stellar-payout/internal/core/ports"
	"stellar-payout/pkg/apperror"
	"stellar-payout/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// HistoryHandler exposes the persisted distribution history.
type HistoryHandler struct {
	store ports.HistoryStore
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(store ports.HistoryStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// GetHistory handles GET /history. Without page/limit parameters it returns
// the full legacy snapshot; with them it returns one page of transactions.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	_, hasPage := c.GetQuery("page")
	_, hasLimit := c.GetQuery("limit")
	if !hasPage && !hasLimit {
		snapshot, err := h.store.LoadSnapshot(c.Request.Context())
		if err != nil {
			response.Error(c, apperror.Internal(err))
			return
		}
		if snapshot == nil {
			response.OK(c, domain.HistoryPage{Transactions: []domain.PaymentRecord{}})
			return
		}
		response.OK(c, snapshot)
		return
	}

	page, err := positiveIntQuery(c, "page", defaultPage)
	if err != nil {
		response.Error(c, err)
		return
	}
	limit, err := positiveIntQuery(c, "limit", defaultLimit)
	if err != nil {
		response.Error(c, err)
		return
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	result, err := h.store.ReadPage(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, apperror.Internal(err))
		return
	}

	response.OK(c, result)
}

// ClearHistory handles POST /clear-history.
func (h *HistoryHandler) ClearHistory(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context()); err != nil {
		response.Error(c, apperror.Internal(err))
		return
	}
	response.Message(c, "History cleared")
}

func positiveIntQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apperror.Validation(name + " must be a positive integer")
	}
	return n, nil
}
