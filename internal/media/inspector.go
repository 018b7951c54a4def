package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

const (
	DefaultMaxBytes     = 5 * 1024 * 1024
	DefaultMaxDimension = 3840
)

var (
	ErrEmptyImage       = errors.New("media: empty image data")
	ErrTooLarge         = errors.New("media: image exceeds size limit")
	ErrUnsupportedType  = errors.New("media: unsupported content type")
	ErrDimensionTooLong = errors.New("media: image exceeds dimension limit")
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type Upload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

// Image is an upload that passed inspection, fully buffered.
type Image struct {
	Bytes       []byte
	ContentType string
	Extension   string
	Width       int
	Height      int
}

// Inspector checks storyboard panel uploads before they reach object
// storage: type, byte size and pixel dimensions.
type Inspector struct {
	maxBytes     int64
	maxDimension int
}

func NewInspector(maxBytes int64, maxDimension int) *Inspector {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &Inspector{maxBytes: maxBytes, maxDimension: maxDimension}
}

func (i *Inspector) Inspect(upload Upload) (*Image, error) {
	if upload.Reader == nil {
		return nil, ErrEmptyImage
	}
	if upload.Size > i.maxBytes {
		return nil, ErrTooLarge
	}

	contentType := normalizeContentType(upload.ContentType, upload.FileName)
	ext, ok := allowedTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedType, contentType)
	}

	data, err := io.ReadAll(io.LimitReader(upload.Reader, i.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("media: read image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if int64(len(data)) > i.maxBytes {
		return nil, ErrTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("media: decode image: %w", err)
	}
	if "image/"+format != contentType {
		return nil, fmt.Errorf("%w: declared %s but content is %s", ErrUnsupportedType, contentType, format)
	}
	if cfg.Width > i.maxDimension || cfg.Height > i.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensionTooLong, cfg.Width, cfg.Height)
	}

	return &Image{
		Bytes:       data,
		ContentType: contentType,
		Extension:   ext,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}

func normalizeContentType(value, fileName string) string {
	ct := strings.ToLower(strings.TrimSpace(value))
	if ct == "" || ct == "application/octet-stream" {
		ct = mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	}
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = strings.TrimSpace(ct[:idx])
	}
	if ct == "image/jpg" {
		return "image/jpeg"
	}
	return ct
}
