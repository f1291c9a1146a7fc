package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/lib/pq"
)

const (
	postgresSyncTableName    = "accounting_sync_records"
	postgresOperationTimeout = 5 * time.Second
)

var ErrInvalidDSN = errors.New("postgres dsn is empty")

type sqlOpenFunc func(driverName, dsn string) (*sql.DB, error)

// PostgresSyncStore keeps sync records in Postgres, one row per (transaction, provider).
// The connection is opened and the table created on first use.
type PostgresSyncStore struct {
	dsn       string
	tableName string
	openDB    sqlOpenFunc

	initOnce sync.Once
	initErr  error
	db       *sql.DB
}

func NewPostgresSyncStore(dsn string) (*PostgresSyncStore, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, ErrInvalidDSN
	}
	return &PostgresSyncStore{
		dsn:       dsn,
		tableName: postgresSyncTableName,
		openDB:    sql.Open,
	}, nil
}

const recordColumns = `transaction_id, team_id, provider, provider_tenant_id, provider_transaction_id,
	provider_entity_type, synced_attachment_mapping, sync_type, status, error_code, error_message,
	synced_at, created_at`

func (s *PostgresSyncStore) Get(ctx context.Context, teamID string, transactionIDs []string, provider domain.ProviderID) ([]domain.SyncRecord, error) {
	if len(transactionIDs) == 0 {
		return []domain.SyncRecord{}, nil
	}
	if err := s.ensureReady(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, postgresOperationTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE team_id = $1 AND provider = $2 AND transaction_id = ANY($3)
		ORDER BY transaction_id`, recordColumns, pq.QuoteIdentifier(s.tableName))

	rows, err := s.db.QueryContext(ctx, query, teamID, string(provider), pq.Array(transactionIDs))
	if err != nil {
		return nil, fmt.Errorf("query sync records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *PostgresSyncStore) List(ctx context.Context, teamID string, provider domain.ProviderID, status *domain.SyncStatus) ([]domain.SyncRecord, error) {
	if err := s.ensureReady(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, postgresOperationTimeout)
	defer cancel()

	var statusFilter sql.NullString
	if status != nil {
		statusFilter = sql.NullString{String: string(*status), Valid: true}
	}

	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE team_id = $1 AND provider = $2 AND ($3::text IS NULL OR status = $3)
		ORDER BY transaction_id`, recordColumns, pq.QuoteIdentifier(s.tableName))

	rows, err := s.db.QueryContext(ctx, query, teamID, string(provider), statusFilter)
	if err != nil {
		return nil, fmt.Errorf("list sync records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Upsert writes record keyed on (transaction_id, provider). A stored provider transaction
// id or entity type is kept when the incoming record carries none.
func (s *PostgresSyncStore) Upsert(ctx context.Context, record domain.SyncRecord) error {
	if err := s.ensureReady(ctx); err != nil {
		return err
	}

	mapping, err := encodeMapping(record.SyncedAttachmentMapping)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, postgresOperationTimeout)
	defer cancel()

	query := fmt.Sprintf(`
		INSERT INTO %[1]s (transaction_id, team_id, provider, provider_tenant_id, provider_transaction_id,
			provider_entity_type, synced_attachment_mapping, sync_type, status, error_code, error_message,
			synced_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		ON CONFLICT (transaction_id, provider)
		DO UPDATE SET
			team_id = EXCLUDED.team_id,
			provider_tenant_id = EXCLUDED.provider_tenant_id,
			provider_transaction_id = COALESCE(EXCLUDED.provider_transaction_id, %[1]s.provider_transaction_id),
			provider_entity_type = COALESCE(EXCLUDED.provider_entity_type, %[1]s.provider_entity_type),
			synced_attachment_mapping = EXCLUDED.synced_attachment_mapping,
			sync_type = EXCLUDED.sync_type,
			status = EXCLUDED.status,
			error_code = EXCLUDED.error_code,
			error_message = EXCLUDED.error_message,
			synced_at = NOW()`, pq.QuoteIdentifier(s.tableName))

	_, err = s.db.ExecContext(ctx, query,
		record.TransactionID,
		record.TeamID,
		string(record.Provider),
		record.ProviderTenantID,
		nullString(record.ProviderTransactionID),
		nullString(record.ProviderEntityType),
		mapping,
		string(record.SyncType),
		string(record.Status),
		nullString(record.ErrorCode),
		nullString(record.ErrorMessage),
	)
	if err != nil {
		return fmt.Errorf("upsert sync record %s: %w", record.TransactionID, err)
	}

	return nil
}

func (s *PostgresSyncStore) Ping(ctx context.Context) error {
	if err := s.ensureReady(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, postgresOperationTimeout)
	defer cancel()

	return s.db.PingContext(ctx)
}

func (s *PostgresSyncStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *PostgresSyncStore) ensureReady(ctx context.Context) error {
	s.initOnce.Do(func() {
		db, err := s.openDB("postgres", s.dsn)
		if err != nil {
			s.initErr = err
			return
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), postgresOperationTimeout)
		defer cancel()

		table := pq.QuoteIdentifier(s.tableName)
		statements := []string{
			fmt.Sprintf(`
				CREATE TABLE IF NOT EXISTS %s (
					id BIGSERIAL PRIMARY KEY,
					transaction_id TEXT NOT NULL,
					team_id TEXT NOT NULL,
					provider TEXT NOT NULL,
					provider_tenant_id TEXT NOT NULL,
					provider_transaction_id TEXT,
					provider_entity_type TEXT,
					synced_attachment_mapping JSONB NOT NULL DEFAULT '{}'::jsonb,
					sync_type TEXT NOT NULL DEFAULT 'auto',
					status TEXT NOT NULL,
					error_code TEXT,
					error_message TEXT,
					synced_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					UNIQUE (transaction_id, provider)
				)`, table),
			fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (team_id, provider, status)`,
				pq.QuoteIdentifier(s.tableName+"_team_status_idx"), table),
		}
		for _, stmt := range statements {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				_ = db.Close()
				s.initErr = fmt.Errorf("prepare %s: %w", s.tableName, err)
				return
			}
		}
		s.db = db
	})
	return s.initErr
}

func scanRecords(rows *sql.Rows) ([]domain.SyncRecord, error) {
	out := []domain.SyncRecord{}
	for rows.Next() {
		var (
			r                                                domain.SyncRecord
			provider, syncType, status                       string
			providerTxID, entityType, errorCode, errorMessage sql.NullString
			mapping                                          []byte
		)
		if err := rows.Scan(
			&r.TransactionID,
			&r.TeamID,
			&provider,
			&r.ProviderTenantID,
			&providerTxID,
			&entityType,
			&mapping,
			&syncType,
			&status,
			&errorCode,
			&errorMessage,
			&r.SyncedAt,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sync record: %w", err)
		}

		decoded, err := decodeMapping(mapping)
		if err != nil {
			return nil, fmt.Errorf("sync record %s: %w", r.TransactionID, err)
		}

		r.Provider = domain.ProviderID(provider)
		r.SyncType = domain.SyncType(syncType)
		r.Status = domain.SyncStatus(status)
		r.ProviderTransactionID = stringFromNull(providerTxID)
		r.ProviderEntityType = stringFromNull(entityType)
		r.ErrorCode = stringFromNull(errorCode)
		r.ErrorMessage = stringFromNull(errorMessage)
		r.SyncedAttachmentMapping = decoded
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sync records: %w", err)
	}
	return out, nil
}

func encodeMapping(m map[string]*string) ([]byte, error) {
	if m == nil {
		m = map[string]*string{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode attachment mapping: %w", err)
	}
	return data, nil
}

func decodeMapping(data []byte) (map[string]*string, error) {
	out := map[string]*string{}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode attachment mapping: %w", err)
	}
	if out == nil {
		out = map[string]*string{}
	}
	return out, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringFromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
