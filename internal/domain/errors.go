package domain

import "errors"

var (
	ErrMissingCredentials = errors.New("accounting credentials not configured")
	ErrNoTargetAccount    = errors.New("no target account available")
	ErrUnknownProvider    = errors.New("unknown accounting provider")
	ErrRecordNotFound     = errors.New("sync record not found")
	ErrTransactionMissing = errors.New("transaction not found")
	ErrInvalidPayload     = errors.New("invalid job payload")
)

// ErrorCode is the stable code stored on a SyncRecord for operators.
type ErrorCode string

const (
	ErrorCodeExportFailed              ErrorCode = "EXPORT_FAILED"
	ErrorCodeAttachmentUnsupportedType ErrorCode = "ATTACHMENT_UNSUPPORTED_TYPE"
	ErrorCodeAttachmentTooLarge        ErrorCode = "ATTACHMENT_TOO_LARGE"
	ErrorCodeAttachmentUploadFailed    ErrorCode = "ATTACHMENT_UPLOAD_FAILED"
	ErrorCodeAttachmentDownloadFailed  ErrorCode = "ATTACHMENT_DOWNLOAD_FAILED"
	ErrorCodeAttachmentNotFound        ErrorCode = "ATTACHMENT_NOT_FOUND"
)

// Retryable reports whether an in-process retry can change the outcome.
func (c ErrorCode) Retryable() bool {
	switch c {
	case ErrorCodeAttachmentUnsupportedType, ErrorCodeAttachmentTooLarge, ErrorCodeAttachmentNotFound:
		return false
	}
	return true
}
