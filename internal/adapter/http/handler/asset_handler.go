package handler

import (
	"stellar-payout/internal/adapter/http/dto"
	"stellar-payout/internal/core/ports"
	"stellar-payout/pkg/apperror"
	"stellar-payout/pkg/response"

	"github.com/gin-gonic/gin"
)

// AssetHandler handles the secondary-asset endpoints.
type AssetHandler struct {
	svc ports.AssetIssuer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(svc ports.AssetIssuer) *AssetHandler {
	return &AssetHandler{svc: svc}
}

// CreateAsset handles POST /create-asset.
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.svc.CreateAsset(c.Request.Context(), ports.CreateAssetRequest{
		IssuerSecret: req.IssuerSecret,
		AssetCode:    req.AssetCode,
		Amount:       req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// DepositToken handles POST /deposit-token.
func (h *AssetHandler) DepositToken(c *gin.Context) {
	var req dto.DepositTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.svc.DepositToken(c.Request.Context(), ports.DepositRequest{
		IssuerSecret:         req.IssuerSecret,
		DestinationPublicKey: req.DestinationPublicKey,
		AssetCode:            req.AssetCode,
		Amount:               req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// WithdrawToken handles POST /withdraw-token.
func (h *AssetHandler) WithdrawToken(c *gin.Context) {
	var req dto.WithdrawTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.svc.WithdrawToken(c.Request.Context(), ports.WithdrawRequest{
		SourceSecret:    req.SourceSecret,
		IssuerPublicKey: req.IssuerPublicKey,
		AssetCode:       req.AssetCode,
		Amount:          req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
