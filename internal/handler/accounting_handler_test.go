package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/mocks"
	"github.com/grachmannico95/accounting-sync/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("team_id", "provider")
	c.SetParamValues(params...)
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestTriggerSync_Queued(t *testing.T) {
	svc := mocks.NewMockAccountingService(t)
	h := NewAccountingHandler(svc, logger.NewNop())

	svc.EXPECT().
		EnqueueSync(mock.Anything, domain.ReconcileRequest{
			TeamID:         "team-1",
			Provider:       domain.ProviderXero,
			TransactionIDs: []string{"tx-1", "tx-2"},
			SyncType:       domain.SyncTypeManual,
		}).
		Return("job-1", nil).
		Once()

	c, rec := newContext(http.MethodPost, "/teams/team-1/accounting/xero/sync", `{"transaction_ids":["tx-1","tx-2"]}`, "team-1", "xero")

	require.NoError(t, h.TriggerSync(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "job-1", body["job_id"])
	assert.Equal(t, "queued", body["status"])
}

func TestTriggerSync_EmptyBodySyncsEverything(t *testing.T) {
	svc := mocks.NewMockAccountingService(t)
	h := NewAccountingHandler(svc, logger.NewNop())

	svc.EXPECT().
		EnqueueSync(mock.Anything, mock.MatchedBy(func(req domain.ReconcileRequest) bool {
			return req.TeamID == "team-1" && len(req.TransactionIDs) == 0
		})).
		Return("job-2", nil).
		Once()

	c, rec := newContext(http.MethodPost, "/teams/team-1/accounting/fortnox/sync", "", "team-1", "fortnox")

	require.NoError(t, h.TriggerSync(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestTriggerSync_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"unknown provider", fmt.Errorf("%w: sage", domain.ErrUnknownProvider), http.StatusBadRequest},
		{"not connected", fmt.Errorf("load credentials: %w", domain.ErrMissingCredentials), http.StatusNotFound},
		{"queue failure", errors.New("job queue is shut down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAccountingService(t)
			h := NewAccountingHandler(svc, logger.NewNop())

			svc.EXPECT().EnqueueSync(mock.Anything, mock.Anything).Return("", tt.err).Once()

			c, rec := newContext(http.MethodPost, "/teams/team-1/accounting/sage/sync", "", "team-1", "sage")

			require.NoError(t, h.TriggerSync(c))
			assert.Equal(t, tt.code, rec.Code)
			assert.NotEmpty(t, decode(t, rec)["error"])
		})
	}
}

func TestTriggerSync_InvalidBody(t *testing.T) {
	h := NewAccountingHandler(mocks.NewMockAccountingService(t), logger.NewNop())

	c, rec := newContext(http.MethodPost, "/teams/team-1/accounting/xero/sync", `{"transaction_ids":`, "team-1", "xero")

	require.NoError(t, h.TriggerSync(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRecords(t *testing.T) {
	svc := mocks.NewMockAccountingService(t)
	h := NewAccountingHandler(svc, logger.NewNop())

	failed := domain.SyncStatusFailed
	svc.EXPECT().
		ListRecords(mock.Anything, "team-1", domain.ProviderFortnox, &failed).
		Return([]domain.SyncRecord{
			{TransactionID: "tx-1", TeamID: "team-1", Provider: domain.ProviderFortnox, Status: domain.SyncStatusFailed, ErrorMessage: domain.StringPtr("Account locked")},
		}, nil).
		Once()

	c, rec := newContext(http.MethodGet, "/teams/team-1/accounting/fortnox/records?status=failed", "", "team-1", "fortnox")

	require.NoError(t, h.ListRecords(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, float64(1), body["total"])
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Account locked", items[0].(map[string]interface{})["error_message"])
}

func TestListRecords_InvalidStatus(t *testing.T) {
	h := NewAccountingHandler(mocks.NewMockAccountingService(t), logger.NewNop())

	c, rec := newContext(http.MethodGet, "/teams/team-1/accounting/fortnox/records?status=pending", "", "team-1", "fortnox")

	require.NoError(t, h.ListRecords(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRecords_StoreError(t *testing.T) {
	svc := mocks.NewMockAccountingService(t)
	h := NewAccountingHandler(svc, logger.NewNop())

	svc.EXPECT().ListRecords(mock.Anything, "team-1", domain.ProviderXero, (*domain.SyncStatus)(nil)).Return(nil, errors.New("timeout")).Once()

	c, rec := newContext(http.MethodGet, "/teams/team-1/accounting/xero/records", "", "team-1", "xero")

	require.NoError(t, h.ListRecords(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	healthy := mocks.NewMockPinger(t)
	broken := mocks.NewMockPinger(t)
	healthy.EXPECT().Ping(mock.Anything).Return(nil).Twice()
	broken.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()

	c, rec := newContext(http.MethodGet, "/health", "")
	require.NoError(t, NewHealthHandler(map[string]Pinger{"vault": healthy}).Check(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])

	c, rec = newContext(http.MethodGet, "/health", "")
	require.NoError(t, NewHealthHandler(map[string]Pinger{"vault": healthy, "postgres": broken}).Check(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "degraded", body["status"])
	deps := body["dependencies"].(map[string]interface{})
	assert.Equal(t, "connection refused", deps["postgres"])
	assert.Equal(t, "ok", deps["vault"])
}
