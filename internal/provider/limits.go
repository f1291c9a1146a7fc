package provider

import (
	"fmt"
	"os"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	MimePDF  = "application/pdf"
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimeGIF  = "image/gif"
	MimeTIFF = "image/tiff"
	MimeBMP  = "image/bmp"
)

const mb = 1024 * 1024

// Limits are the attachment-level constraints of one provider.
type Limits struct {
	MaxConcurrent      int
	CallDelay          time.Duration
	MaxAttachmentBytes int64
	SupportedTypes     map[string]bool
}

func (l Limits) Supports(mimeType string) bool {
	return l.SupportedTypes[mimeType]
}

type LimitsTable map[domain.ProviderID]Limits

var fallbackLimits = Limits{
	MaxConcurrent:      3,
	CallDelay:          time.Second,
	MaxAttachmentBytes: 3 * mb,
	SupportedTypes:     typeSet(MimePDF, MimeJPEG, MimePNG),
}

func DefaultLimits() LimitsTable {
	return LimitsTable{
		domain.ProviderXero: {
			MaxConcurrent:      3,
			CallDelay:          time.Second,
			MaxAttachmentBytes: 3 * mb,
			SupportedTypes:     typeSet(MimePDF, MimeJPEG, MimePNG, MimeGIF),
		},
		domain.ProviderQuickBooks: {
			MaxConcurrent:      10,
			CallDelay:          time.Second,
			MaxAttachmentBytes: 20 * mb,
			SupportedTypes:     typeSet(MimePDF, MimeJPEG, MimePNG, MimeGIF, MimeTIFF, MimeBMP),
		},
		domain.ProviderFortnox: {
			MaxConcurrent:      5,
			CallDelay:          250 * time.Millisecond,
			MaxAttachmentBytes: 10 * mb,
			SupportedTypes:     typeSet(MimePDF, MimeJPEG, MimePNG),
		},
		domain.ProviderSandbox: {
			MaxConcurrent:      4,
			CallDelay:          0,
			MaxAttachmentBytes: 20 * mb,
			SupportedTypes:     typeSet(MimePDF, MimeJPEG, MimePNG, MimeGIF, MimeTIFF, MimeBMP),
		},
	}
}

// For returns the limits of id, or conservative defaults for an unknown provider.
func (t LimitsTable) For(id domain.ProviderID) Limits {
	if l, ok := t[id]; ok {
		return l
	}
	return fallbackLimits
}

type limitsFile struct {
	Providers map[domain.ProviderID]struct {
		MaxConcurrent      *int     `yaml:"max_concurrent"`
		CallDelayMs        *int     `yaml:"call_delay_ms"`
		MaxAttachmentBytes *int64   `yaml:"max_attachment_bytes"`
		SupportedTypes     []string `yaml:"supported_types"`
	} `yaml:"providers"`
}

// LoadLimitsFile applies the overrides found in a YAML file on top of base. Fields that are
// absent in the file keep their base value.
func LoadLimitsFile(path string, base LimitsTable) (LimitsTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read provider limits: %w", err)
	}

	var file limitsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse provider limits %s: %w", path, err)
	}

	out := make(LimitsTable, len(base))
	for id, l := range base {
		out[id] = l
	}

	for id, o := range file.Providers {
		l := out.For(id)
		if o.MaxConcurrent != nil {
			if *o.MaxConcurrent < 1 {
				return nil, fmt.Errorf("provider %s: max_concurrent must be at least 1", id)
			}
			l.MaxConcurrent = *o.MaxConcurrent
		}
		if o.CallDelayMs != nil {
			l.CallDelay = time.Duration(*o.CallDelayMs) * time.Millisecond
		}
		if o.MaxAttachmentBytes != nil {
			l.MaxAttachmentBytes = *o.MaxAttachmentBytes
		}
		if len(o.SupportedTypes) > 0 {
			l.SupportedTypes = typeSet(o.SupportedTypes...)
		}
		out[id] = l
	}

	return out, nil
}

func typeSet(types ...string) map[string]bool {
	set := make(map[string]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}
