package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestInspectorAcceptsPNG(t *testing.T) {
	data := encodePNG(t, 40, 20)
	inspector := NewInspector(0, 0)

	result, err := inspector.Process(context.Background(), Upload{
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		FileName:    "band.png",
		ContentType: "application/octet-stream",
	}, 0)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if result.ContentType != "image/png" || result.Extension != ".png" {
		t.Fatalf("expected png detection, got %q %q", result.ContentType, result.Extension)
	}
	if result.Width != 40 || result.Height != 20 {
		t.Fatalf("unexpected dimensions %dx%d", result.Width, result.Height)
	}
}

func TestInspectorRejectsOversizedDimensions(t *testing.T) {
	data := encodePNG(t, 64, 8)
	inspector := NewInspector(0, 32)

	_, err := inspector.Process(context.Background(), Upload{Reader: bytes.NewReader(data)}, 0)
	if !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}
}

func TestInspectorRejectsOversizedPayload(t *testing.T) {
	data := encodePNG(t, 8, 8)
	inspector := NewInspector(int64(len(data)-1), 0)

	_, err := inspector.Process(context.Background(), Upload{Reader: bytes.NewReader(data)}, 0)
	if !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}
}

func TestInspectorRejectsNonImage(t *testing.T) {
	inspector := NewInspector(0, 0)

	_, err := inspector.Process(context.Background(), Upload{Reader: strings.NewReader("not an image")}, 0)
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Fatalf("expected ErrUnsupportedImage, got %v", err)
	}
}
