package mimetype

import (
	"testing"

	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/internal/provider"
	"github.com/stretchr/testify/assert"
)

var (
	pdfBytes  = []byte("%PDF-1.4 test content")
	jpegBytes = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 0x4a, 0x46, 0x49, 0x46, 0x00}
	pngBytes  = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	gifBytes  = []byte("GIF89a test content")
	tiffBytes = []byte{0x49, 0x49, 0x2a, 0x00, 0x08, 0x00, 0x00, 0x00}
)

func limitsFor(id domain.ProviderID) provider.Limits {
	return provider.DefaultLimits().For(id)
}

func TestResolve_StoredType(t *testing.T) {
	r := Resolve("application/pdf", "file.pdf", pdfBytes, "quickbooks", limitsFor(domain.ProviderQuickBooks))
	assert.True(t, r.OK())
	assert.Equal(t, "application/pdf", r.MimeType)
	assert.Equal(t, SourceStored, r.Source)

	// stored type wins over a conflicting extension
	r = Resolve("image/png", "file.jpg", pngBytes, "fortnox", limitsFor(domain.ProviderFortnox))
	assert.Equal(t, "image/png", r.MimeType)
	assert.Equal(t, SourceStored, r.Source)
}

func TestResolve_ExtensionFallback(t *testing.T) {
	r := Resolve("application/octet-stream", "receipt.pdf", pdfBytes, "quickbooks", limitsFor(domain.ProviderQuickBooks))
	assert.Equal(t, "application/pdf", r.MimeType)
	assert.Equal(t, SourceExtension, r.Source)

	r = Resolve("", "photo.JPEG", jpegBytes, "xero", limitsFor(domain.ProviderXero))
	assert.Equal(t, "image/jpeg", r.MimeType)
	assert.Equal(t, SourceExtension, r.Source)

	r = Resolve("", "RECEIPT.PDF", pdfBytes, "fortnox", limitsFor(domain.ProviderFortnox))
	assert.Equal(t, "application/pdf", r.MimeType)
}

func TestResolve_ContentSniffing(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{"pdf", pdfBytes, "application/pdf"},
		{"jpeg", jpegBytes, "image/jpeg"},
		{"png", pngBytes, "image/png"},
		{"gif", gifBytes, "image/gif"},
		{"tiff", tiffBytes, "image/tiff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve("", "", tt.content, "quickbooks", limitsFor(domain.ProviderQuickBooks))
			assert.Equal(t, tt.want, r.MimeType)
			assert.Equal(t, SourceBuffer, r.Source)
		})
	}
}

func TestResolve_Unsupported(t *testing.T) {
	r := Resolve("image/gif", "animation.gif", gifBytes, "fortnox", limitsFor(domain.ProviderFortnox))
	assert.False(t, r.OK())
	assert.Equal(t, SourceFailed, r.Source)
	assert.Contains(t, r.Err.Error(), "not supported by fortnox")

	r = Resolve("image/tiff", "scan.tiff", tiffBytes, "xero", limitsFor(domain.ProviderXero))
	assert.False(t, r.OK())
	assert.Contains(t, r.Err.Error(), "not supported by xero")
}

func TestResolve_Undetermined(t *testing.T) {
	r := Resolve("", "", []byte("unknown content"), "quickbooks", limitsFor(domain.ProviderQuickBooks))
	assert.False(t, r.OK())
	assert.ErrorIs(t, r.Err, ErrUndetermined)
	assert.EqualError(t, r.Err, "Could not determine file type")

	r = Resolve("", "", nil, "quickbooks", limitsFor(domain.ProviderQuickBooks))
	assert.Equal(t, SourceFailed, r.Source)

	r = Resolve("", "", []byte{0x00}, "xero", limitsFor(domain.ProviderXero))
	assert.Equal(t, SourceFailed, r.Source)
}

func TestEnsureFileExtension(t *testing.T) {
	tests := []struct {
		name, mime, want string
	}{
		{"invoice.pdf", "application/pdf", "invoice.pdf"},
		{"invoice", "application/pdf", "invoice.pdf"},
		{"receipt", "image/jpeg", "receipt.jpg"},
		{"photo", "image/jpg", "photo.jpg"},
		{"vercel-inc.", "application/pdf", "vercel-inc.pdf"},
		{"file..", "image/jpeg", "file.jpg"},
		{"file", "unknown/type", "file.pdf"},
		{"doc", "text/csv", "doc.csv"},
		{"file.docx", "application/pdf", "file.docx"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EnsureFileExtension(tt.name, tt.mime), tt.name)
	}
}
