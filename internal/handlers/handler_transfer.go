package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/signordemola/belize-app/internal/apperrors"
	portssvc "github.com/signordemola/belize-app/internal/core/ports/services"
	"github.com/signordemola/belize-app/internal/core/services"
	"github.com/signordemola/belize-app/internal/dto"
	"github.com/signordemola/belize-app/internal/middleware"
)

// transferHandler handles HTTP requests for customer money movement.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
	billPayService  portssvc.BillPaySvcFacade
}

func newTransferHandler(ts portssvc.TransferSvcFacade, bs portssvc.BillPaySvcFacade) *transferHandler {
	return &transferHandler{
		transferService: ts,
		billPayService:  bs,
	}
}

// registerTransferRoutes registers routes for transfers and bill payments.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade, billPayService portssvc.BillPaySvcFacade) {
	h := newTransferHandler(transferService, billPayService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("/internal", h.transferInternal)
		transfers.POST("/us-bank", h.transferUSBank)
		transfers.POST("/international", h.transferInternational)
	}
	rg.POST("/bill-payments", h.payBill)
}

// respondTransferError maps the ordered check-ladder rejections to HTTP
// status codes. Every rejection means nothing was persisted.
func respondTransferError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrTransferBlocked):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Transfers are currently blocked for this account. Please contact support."})
	case errors.Is(err, services.ErrPinNotSet):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Transaction PIN not set. Set a PIN before transferring."})
	case errors.Is(err, services.ErrInvalidPin):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Invalid transaction PIN."})
	case errors.Is(err, services.ErrSourceAccountNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Source account not found."})
	case errors.Is(err, services.ErrRecipientNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Recipient account not found."})
	case errors.Is(err, services.ErrSameAccount):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cannot transfer to the same account."})
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Insufficient balance in the source account."})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Transfer failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Transfer failed. Please try again."})
	}
}

// transferInternal godoc
// @Summary Internal transfer
// @Description Moves money between two accounts held at this institution.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body dto.InternalTransferRequest true "Transfer details"
// @Success 200 {object} dto.TransferResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers/internal [post]
func (h *transferHandler) transferInternal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InternalTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.transferService.TransferInternal(c.Request.Context(), userID, req)
	if err != nil {
		respondTransferError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// transferUSBank godoc
// @Summary US bank transfer
// @Description Initiates a transfer to an account at a US bank. The debit is recorded as PENDING.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body dto.USBankTransferRequest true "Transfer details"
// @Success 200 {object} dto.TransferResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers/us-bank [post]
func (h *transferHandler) transferUSBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.USBankTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.transferService.TransferUSBank(c.Request.Context(), userID, req)
	if err != nil {
		respondTransferError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// transferInternational godoc
// @Summary International transfer
// @Description Initiates a SWIFT transfer to a foreign bank. The debit is recorded as PENDING.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body dto.InternationalTransferRequest true "Transfer details"
// @Success 200 {object} dto.TransferResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers/international [post]
func (h *transferHandler) transferInternational(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InternationalTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.transferService.TransferInternational(c.Request.Context(), userID, req)
	if err != nil {
		respondTransferError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// payBill godoc
// @Summary Pay a bill
// @Description Pays a registered biller from a customer account.
// @Tags transfers
// @Accept json
// @Produce json
// @Param payment body dto.BillPayRequest true "Bill payment details"
// @Success 200 {object} dto.TransferResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bill-payments [post]
func (h *transferHandler) payBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BillPayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.billPayService.PayBill(c.Request.Context(), userID, req)
	if err != nil {
		respondTransferError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
