package handler

import (
	"errors"
	"net/http"

	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/internal/service"
	"github.com/grachmannico95/accounting-sync/pkg/logger"
	"github.com/labstack/echo/v4"
)

type AccountingHandler struct {
	service service.AccountingService
	logger  *logger.Logger
}

func NewAccountingHandler(service service.AccountingService, log *logger.Logger) *AccountingHandler {
	return &AccountingHandler{
		service: service,
		logger:  log,
	}
}

type syncRequest struct {
	TransactionIDs []string `json:"transaction_ids"`
}

// TriggerSync queues a manual reconciliation for the team and provider in the path.
func (h *AccountingHandler) TriggerSync(c echo.Context) error {
	ctx := c.Request().Context()

	teamID := c.Param("team_id")
	providerID := domain.ProviderID(c.Param("provider"))

	var body syncRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	jobID, err := h.service.EnqueueSync(ctx, domain.ReconcileRequest{
		TeamID:         teamID,
		Provider:       providerID,
		TransactionIDs: body.TransactionIDs,
		SyncType:       domain.SyncTypeManual,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownProvider):
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "unsupported provider",
			})
		case errors.Is(err, domain.ErrMissingCredentials):
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "provider not connected",
			})
		}

		h.logger.Error(ctx, "Failed to queue sync",
			"provider", providerID,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to queue sync",
		})
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"job_id": jobID,
		"status": "queued",
	})
}

// ListRecords is the operator view of the sync records, optionally filtered by status.
func (h *AccountingHandler) ListRecords(c echo.Context) error {
	ctx := c.Request().Context()

	teamID := c.Param("team_id")
	providerID := domain.ProviderID(c.Param("provider"))

	var statusFilter *domain.SyncStatus
	if statusParam := c.QueryParam("status"); statusParam != "" {
		status := domain.SyncStatus(statusParam)
		if !status.Valid() {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "status must be synced, partial or failed",
			})
		}
		statusFilter = &status
	}

	records, err := h.service.ListRecords(ctx, teamID, providerID, statusFilter)
	if err != nil {
		h.logger.Error(ctx, "Failed to list sync records",
			"provider", providerID,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list sync records",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"team_id":  teamID,
		"provider": providerID,
		"items":    records,
		"total":    len(records),
	})
}
