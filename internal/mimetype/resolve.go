// Package mimetype resolves the content type of an attachment before it is sent to a
// provider, trying the stored type, then the file extension, then the file content.
package mimetype

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	gvmime "github.com/gabriel-vasile/mimetype"
	"github.com/grachmannico95/accounting-sync/internal/provider"
)

type Source string

const (
	SourceStored    Source = "stored"
	SourceExtension Source = "extension"
	SourceBuffer    Source = "buffer"
	SourceFailed    Source = "failed"
)

type Resolution struct {
	MimeType string
	Source   Source
	Err      error
}

// OK reports whether a supported type was found.
func (r Resolution) OK() bool {
	return r.Err == nil && r.MimeType != ""
}

var ErrUndetermined = errors.New("Could not determine file type")

// known lists the document types we can recognise, supported or not.
var known = map[string]bool{
	provider.MimePDF:  true,
	provider.MimeJPEG: true,
	provider.MimePNG:  true,
	provider.MimeGIF:  true,
	provider.MimeTIFF: true,
	provider.MimeBMP:  true,
	"image/webp":      true,
	"image/heic":      true,
}

var byExtension = map[string]string{
	".pdf":  provider.MimePDF,
	".jpg":  provider.MimeJPEG,
	".jpeg": provider.MimeJPEG,
	".png":  provider.MimePNG,
	".gif":  provider.MimeGIF,
	".tif":  provider.MimeTIFF,
	".tiff": provider.MimeTIFF,
	".bmp":  provider.MimeBMP,
	".webp": "image/webp",
	".heic": "image/heic",
}

// Resolve finds the type of content and checks it against the provider's supported set.
// A type that is recognised but unsupported fails immediately; it does not fall through
// to the next layer.
func Resolve(storedType, fileName string, content []byte, providerName string, limits provider.Limits) Resolution {
	mimeType, source := detect(storedType, fileName, content)
	if mimeType == "" {
		return Resolution{Source: SourceFailed, Err: ErrUndetermined}
	}

	if !limits.Supports(mimeType) {
		return Resolution{
			Source: SourceFailed,
			Err:    fmt.Errorf("file type %s is not supported by %s", mimeType, providerName),
		}
	}

	return Resolution{MimeType: mimeType, Source: source}
}

func detect(storedType, fileName string, content []byte) (string, Source) {
	if t := normalize(storedType); known[t] {
		return t, SourceStored
	}

	if fileName != "" {
		if t, ok := byExtension[strings.ToLower(filepath.Ext(fileName))]; ok {
			return t, SourceExtension
		}
	}

	if len(content) > 0 {
		if t := normalize(gvmime.Detect(content).String()); known[t] {
			return t, SourceBuffer
		}
	}

	return "", SourceFailed
}

func normalize(t string) string {
	t, _, _ = strings.Cut(t, ";")
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "image/jpg" || t == "image/pjpeg" {
		return provider.MimeJPEG
	}
	return t
}

var extensionFor = map[string]string{
	provider.MimePDF:  ".pdf",
	provider.MimeJPEG: ".jpg",
	provider.MimePNG:  ".png",
	provider.MimeGIF:  ".gif",
	provider.MimeTIFF: ".tiff",
	provider.MimeBMP:  ".bmp",
	"image/webp":      ".webp",
	"image/heic":      ".heic",
	"text/plain":      ".txt",
	"text/csv":        ".csv",
}

var validExtension = regexp.MustCompile(`\.[A-Za-z0-9]{2,5}$`)

// EnsureFileExtension appends an extension derived from mimeType when fileName has none.
// Providers reject uploads whose name does not carry an extension.
func EnsureFileExtension(fileName, mimeType string) string {
	if validExtension.MatchString(fileName) {
		return fileName
	}

	base := strings.TrimRight(fileName, ".")
	ext, ok := extensionFor[normalize(mimeType)]
	if !ok {
		ext = ".pdf"
	}
	return base + ext
}
