package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/signordemola/belize-app/internal/apperrors"
	portssvc "github.com/signordemola/belize-app/internal/core/ports/services"
	"github.com/signordemola/belize-app/internal/dto"
	"github.com/signordemola/belize-app/internal/middleware"
)

// adminHandler handles administrative money movement and account controls.
type adminHandler struct {
	balanceService portssvc.BalanceSvcFacade
	userService    portssvc.UserSvcFacade
}

func newAdminHandler(bs portssvc.BalanceSvcFacade, us portssvc.UserSvcFacade) *adminHandler {
	return &adminHandler{
		balanceService: bs,
		userService:    us,
	}
}

// registerAdminRoutes registers the admin-only routes. The group carries
// RequireAdmin; services still re-check the role against the database.
func registerAdminRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade, userService portssvc.UserSvcFacade) {
	h := newAdminHandler(balanceService, userService)

	admin := rg.Group("/admin", middleware.RequireAdmin())
	{
		admin.POST("/balance-adjustments", h.adjustBalance)
		admin.PUT("/users/:id/transfer-block", h.setTransferBlock)
	}
}

// adjustBalance godoc
// @Summary Adjust a customer balance
// @Description Directly credits or debits a customer account. A receipt email is sent best-effort.
// @Tags admin
// @Accept json
// @Produce json
// @Param adjustment body dto.BalanceAdjustmentRequest true "Adjustment details"
// @Success 200 {object} dto.BalanceAdjustmentResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/balance-adjustments [post]
func (h *adminHandler) adjustBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BalanceAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adminUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.balanceService.AdjustBalance(c.Request.Context(), adminUserID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin access required"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Insufficient balance in the target account."})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to adjust balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to adjust balance"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// setTransferBlock godoc
// @Summary Block or unblock transfers for a user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Target user ID"
// @Param block body dto.TransferBlockRequest true "Block flag"
// @Success 204 "Updated"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/transfer-block [put]
func (h *adminHandler) setTransferBlock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adminUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.SetTransferBlock(c.Request.Context(), adminUserID, c.Param("id"), req.Blocked); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin access required"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			logger.Error("Failed to update transfer block", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update transfer block"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
