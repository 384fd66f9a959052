package handler

import (
	"net/http"

	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
	"github.com/camilosanchez/virtual-wallet/internal/domain/usecase/wallet"
	"github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles HTTP requests for the wallet operations. Business
// failures travel inside the envelope with HTTP 200; only malformed requests
// and panics produce non-200 responses.
type WalletHandler struct {
	service *wallet.Service
	logger  coreport.Logger
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(service *wallet.Service, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		service: service,
		logger:  logger,
	}
}

// Dispatch handles POST /api/wallet with a dynamic operation body
func (h *WalletHandler) Dispatch(c *gin.Context) {
	var req dto.OperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	result := h.service.Dispatch(c.Request.Context(), wallet.OperationRequest{
		Operation:  req.Operation,
		Parameters: req.Parameters,
	})
	c.JSON(http.StatusOK, result)
}

// RegisterAccount handles POST /api/wallet/clientes
func (h *WalletHandler) RegisterAccount(c *gin.Context) {
	var req dto.RegisterAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	result := h.service.RegisterAccount(c.Request.Context(), wallet.RegisterAccountRequest{
		Document:    req.Document,
		Names:       req.Names,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	c.JSON(http.StatusOK, result)
}

// FundWallet handles POST /api/wallet/recargas
func (h *WalletHandler) FundWallet(c *gin.Context) {
	var req dto.FundWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	result := h.service.FundWallet(c.Request.Context(), wallet.FundWalletRequest{
		Document:    req.Document,
		PhoneNumber: req.PhoneNumber,
		Amount:      req.Amount,
	})
	c.JSON(http.StatusOK, result)
}

// InitiatePayment handles POST /api/wallet/pagos
func (h *WalletHandler) InitiatePayment(c *gin.Context) {
	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	result := h.service.InitiatePayment(c.Request.Context(), wallet.InitiatePaymentRequest{
		Document:    req.Document,
		PhoneNumber: req.PhoneNumber,
		Amount:      req.Amount,
	})
	c.JSON(http.StatusOK, result)
}

// ConfirmPayment handles POST /api/wallet/pagos/confirmar
func (h *WalletHandler) ConfirmPayment(c *gin.Context) {
	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	result := h.service.ConfirmPayment(c.Request.Context(), wallet.ConfirmPaymentRequest{
		SessionID: req.SessionID,
		Token:     req.Token,
	})
	c.JSON(http.StatusOK, result)
}

// CheckBalance handles GET /api/wallet/saldo?documento=...&celular=...
func (h *WalletHandler) CheckBalance(c *gin.Context) {
	result := h.service.CheckBalance(c.Request.Context(), wallet.CheckBalanceRequest{
		Document:    c.Query("documento"),
		PhoneNumber: c.Query("celular"),
	})
	c.JSON(http.StatusOK, result)
}

// badRequest reports a body that could not be bound. Missing required fields
// map to the missing-parameters code, matching the engine's own validation.
func (h *WalletHandler) badRequest(c *gin.Context, err error) {
	h.logger.Warn("Invalid request body", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})

	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Success: false,
		Code:    errs.CodeMissingParameters,
		Message: "Parámetros insuficientes",
	})
}
