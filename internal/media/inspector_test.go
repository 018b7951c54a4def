package media

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestInspectAcceptsPNG(t *testing.T) {
	data := encodePNG(t, 16, 9)
	inspector := NewInspector(0, 0)

	img, err := inspector.Inspect(Upload{Reader: bytes.NewReader(data), Size: int64(len(data)), FileName: "panel.png"})
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, ".png", img.Extension)
	assert.Equal(t, 16, img.Width)
	assert.Equal(t, 9, img.Height)
	assert.Equal(t, data, img.Bytes)
}

func TestInspectRejectsOversizeDimensions(t *testing.T) {
	data := encodePNG(t, 40, 10)
	inspector := NewInspector(0, 32)

	_, err := inspector.Inspect(Upload{Reader: bytes.NewReader(data), Size: int64(len(data)), ContentType: "image/png"})
	assert.True(t, errors.Is(err, ErrDimensionTooLong), "got %v", err)
}

func TestInspectRejectsTooManyBytes(t *testing.T) {
	data := encodePNG(t, 8, 8)
	inspector := NewInspector(int64(len(data)-1), 0)

	_, err := inspector.Inspect(Upload{Reader: bytes.NewReader(data), ContentType: "image/png"})
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = inspector.Inspect(Upload{Reader: bytes.NewReader(data), Size: int64(len(data)), ContentType: "image/png"})
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestInspectRejectsUnsupportedAndMismatchedTypes(t *testing.T) {
	inspector := NewInspector(0, 0)

	_, err := inspector.Inspect(Upload{Reader: bytes.NewReader([]byte("%PDF")), ContentType: "application/pdf"})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	data := encodePNG(t, 4, 4)
	_, err = inspector.Inspect(Upload{Reader: bytes.NewReader(data), ContentType: "image/jpeg"})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestInspectRejectsEmptyUpload(t *testing.T) {
	inspector := NewInspector(0, 0)

	_, err := inspector.Inspect(Upload{})
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = inspector.Inspect(Upload{Reader: bytes.NewReader(nil), ContentType: "image/png"})
	assert.ErrorIs(t, err, ErrEmptyImage)
}
