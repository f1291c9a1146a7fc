package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/accounting-sync/internal/domain"
)

// Sandbox is an in-memory provider ledger. It backs local development and the tests, and
// lets callers inject failures at every call site.
type Sandbox struct {
	// SyncErr, when set, is consulted before each SyncTransactions call.
	SyncErr func(batch []domain.MappedTransaction) error
	// Reject maps transaction ids to the rejection message returned for them.
	Reject map[string]string
	// UploadErr, when set, is consulted before each upload with the 1-based call count
	// for that file name.
	UploadErr func(params UploadAttachmentParams, call int) error
	DeleteErr error
	NoteErr   error

	accounts []Account
	vouchers map[string]*SandboxVoucher
	byTx     map[string]string
	uploads  map[string]int
	calls    SandboxCalls
	mu       sync.Mutex
}

type SandboxVoucher struct {
	ID            string
	EntityType    string
	Transaction   domain.MappedTransaction
	TargetAccount string
	Attachments   map[string]string
	Notes         []string
}

type SandboxCalls struct {
	Sync   int
	Upload int
	Delete int
	Note   int
}

func NewSandbox(accounts ...Account) *Sandbox {
	if len(accounts) == 0 {
		accounts = []Account{{ID: "sandbox-bank", Name: "Sandbox Bank", Code: "1930", Type: "BANK"}}
	}
	return &Sandbox{
		Reject:   make(map[string]string),
		accounts: accounts,
		vouchers: make(map[string]*SandboxVoucher),
		byTx:     make(map[string]string),
		uploads:  make(map[string]int),
	}
}

// Factory returns a Factory that hands out this ledger for every team.
func (s *Sandbox) Factory() Factory {
	return func(cfg InitConfig) (Provider, error) {
		return s, nil
	}
}

func (s *Sandbox) ID() domain.ProviderID {
	return domain.ProviderSandbox
}

func (s *Sandbox) GetAccounts(ctx context.Context, tenantID string) ([]Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Account, len(s.accounts))
	copy(out, s.accounts)
	return out, nil
}

func (s *Sandbox) SyncTransactions(ctx context.Context, params SyncTransactionsParams) (*SyncResult, error) {
	s.mu.Lock()
	s.calls.Sync++
	s.mu.Unlock()

	if s.SyncErr != nil {
		if err := s.SyncErr(params.Transactions); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := &SyncResult{}
	for _, tx := range params.Transactions {
		if msg, rejected := s.Reject[tx.ID]; rejected {
			result.Results = append(result.Results, TransactionResult{
				TransactionID: tx.ID,
				Error:         msg,
			})
			result.FailedCount++
			continue
		}

		// the transaction id doubles as idempotency key
		voucherID, exists := s.byTx[tx.ID]
		if !exists {
			voucherID = "sbx-" + uuid.NewString()
			s.byTx[tx.ID] = voucherID
		}

		entityType := "income"
		if tx.Amount.IsNegative() {
			entityType = "expense"
		}

		s.vouchers[voucherID] = &SandboxVoucher{
			ID:            voucherID,
			EntityType:    entityType,
			Transaction:   tx,
			TargetAccount: params.TargetAccountID,
			Attachments:   make(map[string]string),
		}

		result.Results = append(result.Results, TransactionResult{
			TransactionID:         tx.ID,
			ProviderTransactionID: voucherID,
			ProviderEntityType:    entityType,
			Success:               true,
		})
		result.SyncedCount++
	}

	return result, nil
}

func (s *Sandbox) UploadAttachment(ctx context.Context, params UploadAttachmentParams) (*AttachmentResult, error) {
	s.mu.Lock()
	s.calls.Upload++
	s.uploads[params.FileName]++
	call := s.uploads[params.FileName]
	s.mu.Unlock()

	if s.UploadErr != nil {
		if err := s.UploadErr(params, call); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	voucher, ok := s.vouchers[params.ProviderTransactionID]
	if !ok {
		return &AttachmentResult{Error: fmt.Sprintf("voucher %s not found", params.ProviderTransactionID)}, nil
	}

	attachmentID := "sbx-att-" + uuid.NewString()
	voucher.Attachments[attachmentID] = params.FileName

	return &AttachmentResult{Success: true, AttachmentID: attachmentID}, nil
}

func (s *Sandbox) DeleteAttachment(ctx context.Context, params DeleteAttachmentParams) (*DeleteAttachmentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls.Delete++

	if s.DeleteErr != nil {
		return nil, s.DeleteErr
	}

	voucher, ok := s.vouchers[params.ProviderTransactionID]
	if !ok {
		return &DeleteAttachmentResult{Error: "voucher not found"}, nil
	}
	if _, ok := voucher.Attachments[params.AttachmentID]; !ok {
		return &DeleteAttachmentResult{Error: "attachment not found"}, nil
	}

	delete(voucher.Attachments, params.AttachmentID)
	return &DeleteAttachmentResult{Success: true}, nil
}

func (s *Sandbox) AddTransactionHistoryNote(ctx context.Context, params HistoryNoteParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls.Note++

	if s.NoteErr != nil {
		return s.NoteErr
	}

	voucher, ok := s.vouchers[params.ProviderTransactionID]
	if !ok {
		return &Error{Kind: KindNotFound, Message: "voucher not found"}
	}
	voucher.Notes = append(voucher.Notes, params.Note)
	return nil
}

func (s *Sandbox) IsTokenExpired(expiresAt time.Time) bool {
	return TokenExpiresSoon(expiresAt, time.Now())
}

func (s *Sandbox) RefreshTokens(ctx context.Context, refreshToken string) (*TokenSet, error) {
	if refreshToken == "" {
		return nil, &Error{Kind: KindAuth, Message: "refresh token missing"}
	}
	return &TokenSet{
		AccessToken:  "sbx-access-" + uuid.NewString(),
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(time.Hour),
	}, nil
}

// Voucher returns a copy of the voucher with the given provider id.
func (s *Sandbox) Voucher(id string) (SandboxVoucher, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vouchers[id]
	if !ok {
		return SandboxVoucher{}, false
	}
	out := *v
	out.Attachments = make(map[string]string, len(v.Attachments))
	for k, name := range v.Attachments {
		out.Attachments[k] = name
	}
	out.Notes = append([]string(nil), v.Notes...)
	return out, true
}

// SeedVoucher registers an already exported transaction.
func (s *Sandbox) SeedVoucher(transactionID, voucherID string, attachments map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := &SandboxVoucher{ID: voucherID, EntityType: "expense", Attachments: make(map[string]string)}
	for k, name := range attachments {
		v.Attachments[k] = name
	}
	s.vouchers[voucherID] = v
	s.byTx[transactionID] = voucherID
}

func (s *Sandbox) Calls() SandboxCalls {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}
