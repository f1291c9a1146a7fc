package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/attachments"
	"github.com/grachmannico95/accounting-sync/internal/blob"
	"github.com/grachmannico95/accounting-sync/internal/config"
	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/internal/exporter"
	"github.com/grachmannico95/accounting-sync/internal/handler"
	"github.com/grachmannico95/accounting-sync/internal/jobqueue"
	"github.com/grachmannico95/accounting-sync/internal/provider"
	"github.com/grachmannico95/accounting-sync/internal/server"
	"github.com/grachmannico95/accounting-sync/internal/service"
	"github.com/grachmannico95/accounting-sync/internal/storage"
	"github.com/grachmannico95/accounting-sync/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teamID = "team-1"

type testEnv struct {
	srv     *httptest.Server
	queue   jobqueue.Queue
	store   *storage.MemoryStore
	files   *blob.FSStore
	sandbox *provider.Sandbox
}

func setupTestServer(t *testing.T) *testEnv {
	log := logger.NewNop()
	env := &testEnv{
		store:   storage.NewMemoryStore(),
		files:   blob.NewFSStore(t.TempDir()),
		sandbox: provider.NewSandbox(),
	}

	registry := provider.NewRegistry()
	registry.Register(domain.ProviderSandbox, env.sandbox.Factory())

	env.queue = jobqueue.New(log, &jobqueue.Config{
		ChannelBuffer:  100,
		MaxRetries:     3,
		RetryBaseDelay: 10 * time.Millisecond,
	})

	syncService := service.NewSyncService(service.Deps{
		Transactions: env.store,
		Records:      env.store,
		Credentials:  env.store,
		Providers:    registry,
		Exporter:     exporter.New(env.store, env.queue, log, 0),
		Engine:       attachments.NewEngine(env.store, env.store, env.files, nil, log),
		Scheduler:    env.queue,
	}, log)

	require.NoError(t, env.queue.Subscribe(domain.JobSyncTransactions, jobqueue.NewReconciliationConsumer(syncService, log, 2)))
	require.NoError(t, env.queue.Subscribe(domain.JobSyncAttachments, jobqueue.NewAttachmentSyncConsumer(syncService, log, 4)))
	require.NoError(t, env.queue.Start(context.Background()))

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: "8080",
			Host: "0.0.0.0",
		},
	}

	accountingHandler := handler.NewAccountingHandler(syncService, log)
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{"vault": env.files})
	env.srv = httptest.NewServer(server.New(cfg, log, accountingHandler, healthHandler).Handler())

	t.Cleanup(func() {
		env.srv.Close()
		_ = env.queue.Shutdown(context.Background())
	})

	return env
}

func (env *testEnv) connect(t *testing.T) {
	t.Helper()
	require.NoError(t, env.store.SaveCredentials(context.Background(), domain.Credentials{
		TeamID:       teamID,
		Provider:     domain.ProviderSandbox,
		TenantID:     "sandbox",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
	}))
}

func (env *testEnv) addTransaction(t *testing.T, id string, attachmentIDs ...string) {
	t.Helper()
	tx := domain.Transaction{
		ID:           id,
		TeamID:       teamID,
		Date:         time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Name:         "Office supplies",
		Amount:       decimal.RequireFromString("-89.90"),
		Currency:     "SEK",
		CategorySlug: "office-supplies",
	}
	for _, a := range attachmentIDs {
		path := teamID + "/inbox/" + a + ".pdf"
		require.NoError(t, env.files.Put(path, []byte("%PDF-1.4 receipt "+a)))
		tx.Attachments = append(tx.Attachments, domain.Attachment{ID: a, Name: a + ".pdf", Path: path, MimeType: "application/pdf"})
	}
	require.NoError(t, env.store.PutTransaction(context.Background(), tx))
}

type recordsResponse struct {
	Total int                 `json:"total"`
	Items []domain.SyncRecord `json:"items"`
}

func getRecords(t *testing.T, url string) recordsResponse {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out recordsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func triggerSync(t *testing.T, url string, body string) (int, map[string]string) {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestSyncFlow_ExportsAndUploadsAttachments(t *testing.T) {
	env := setupTestServer(t)
	env.connect(t)
	env.addTransaction(t, "tx-1", "att-1", "att-2")
	env.addTransaction(t, "tx-2")

	base := env.srv.URL + "/teams/" + teamID + "/accounting/sandbox"

	code, body := triggerSync(t, base+"/sync", `{}`)
	require.Equal(t, http.StatusAccepted, code)
	assert.NotEmpty(t, body["job_id"])
	assert.Equal(t, "queued", body["status"])

	var records recordsResponse
	require.Eventually(t, func() bool {
		records = getRecords(t, base+"/records")
		if records.Total != 2 {
			return false
		}
		for _, r := range records.Items {
			if r.TransactionID == "tx-1" && len(r.SyncedAttachmentMapping) == 2 {
				return true
			}
		}
		return false
	}, 5*time.Second, 50*time.Millisecond)

	for _, r := range records.Items {
		assert.Equal(t, domain.SyncStatusSynced, r.Status)
		assert.Equal(t, domain.SyncTypeManual, r.SyncType)
		require.True(t, r.HasProviderTransaction())

		voucher, ok := env.sandbox.Voucher(*r.ProviderTransactionID)
		require.True(t, ok)
		if r.TransactionID == "tx-1" {
			assert.Len(t, voucher.Attachments, 2)
		}
	}

	synced := getRecords(t, base+"/records?status=synced")
	assert.Equal(t, 2, synced.Total)
	failed := getRecords(t, base+"/records?status=failed")
	assert.Equal(t, 0, failed.Total)
}

func TestSyncFlow_SecondRunSkipsCompleteTransactions(t *testing.T) {
	env := setupTestServer(t)
	env.connect(t)
	env.addTransaction(t, "tx-1", "att-1")

	base := env.srv.URL + "/teams/" + teamID + "/accounting/sandbox"

	code, _ := triggerSync(t, base+"/sync", `{"transaction_ids":["tx-1"]}`)
	require.Equal(t, http.StatusAccepted, code)
	require.Eventually(t, func() bool {
		return env.sandbox.Calls().Upload == 1
	}, 5*time.Second, 50*time.Millisecond)

	code, _ = triggerSync(t, base+"/sync", `{"transaction_ids":["tx-1"]}`)
	require.Equal(t, http.StatusAccepted, code)

	assert.Never(t, func() bool {
		calls := env.sandbox.Calls()
		return calls.Sync > 1 || calls.Upload > 1
	}, 500*time.Millisecond, 50*time.Millisecond)
}

func TestSyncFlow_RejectsUnconnectedAndUnknownProviders(t *testing.T) {
	env := setupTestServer(t)

	code, body := triggerSync(t, env.srv.URL+"/teams/"+teamID+"/accounting/sandbox/sync", `{}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.NotEmpty(t, body["error"])

	code, _ = triggerSync(t, env.srv.URL+"/teams/"+teamID+"/accounting/sage/sync", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHealthCheck(t *testing.T) {
	env := setupTestServer(t)

	resp, err := http.Get(env.srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}
