package handler

import (
	"ticketing-rewards/internal/adapter/http/dto"
	"ticketing-rewards/internal/core/ports"
	"ticketing-rewards/pkg/apperror"
	"ticketing-rewards/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet statement endpoints.
type WalletHandler struct {
	walletSvc ports.WalletQueryService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletQueryService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetStatement handles GET /api/v1/wallet.
func (h *WalletHandler) GetStatement(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	stmt, err := h.walletSvc.GetStatement(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToWalletStatementResponse(stmt))
}
