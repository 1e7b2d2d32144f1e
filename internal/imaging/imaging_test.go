package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func createTestJPEG(w, h int) []byte {
	var buf bytes.Buffer
	jpeg.Encode(&buf, solid(w, h, color.RGBA{255, 0, 0, 255}), &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int, c color.Color) []byte {
	var buf bytes.Buffer
	png.Encode(&buf, solid(w, h, c))
	return buf.Bytes()
}

func TestProcessPhotoJPEG(t *testing.T) {
	photo, err := ProcessPhoto(createTestJPEG(100, 80))
	if err != nil {
		t.Fatalf("ProcessPhoto JPEG: %v", err)
	}
	if photo.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", photo.MIME)
	}
	if photo.Width != 100 || photo.Height != 80 {
		t.Errorf("expected 100x80, got %dx%d", photo.Width, photo.Height)
	}
}

func TestProcessPhotoPNGBecomesJPEG(t *testing.T) {
	photo, err := ProcessPhoto(createTestPNG(60, 60, color.RGBA{0, 0, 255, 255}))
	if err != nil {
		t.Fatalf("ProcessPhoto PNG: %v", err)
	}
	if _, format, err := image.Decode(bytes.NewReader(photo.Data)); err != nil || format != "jpeg" {
		t.Errorf("expected JPEG output, got format %q err %v", format, err)
	}
}

func TestProcessPhotoFlattensTransparency(t *testing.T) {
	photo, err := ProcessPhoto(createTestPNG(20, 20, color.RGBA{0, 0, 0, 0}))
	if err != nil {
		t.Fatalf("ProcessPhoto: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	r, g, b, _ := img.At(10, 10).RGBA()
	if r>>8 < 240 || g>>8 < 240 || b>>8 < 240 {
		t.Errorf("expected white background, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestProcessPhotoDownscale(t *testing.T) {
	photo, err := ProcessPhoto(createTestJPEG(2048, 1024))
	if err != nil {
		t.Fatalf("ProcessPhoto large image: %v", err)
	}
	if photo.Width != MaxDimension || photo.Height != MaxDimension/2 {
		t.Errorf("expected %dx%d, got %dx%d", MaxDimension, MaxDimension/2, photo.Width, photo.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if img.Bounds().Dx() != photo.Width || img.Bounds().Dy() != photo.Height {
		t.Errorf("encoded size %v does not match reported size", img.Bounds())
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h, limit, wantW, wantH int
	}{
		{50, 50, 1024, 50, 50},
		{1024, 1024, 1024, 1024, 1024},
		{2048, 2048, 1024, 1024, 1024},
		{3000, 1500, 1024, 1024, 512},
		{1500, 3000, 1024, 512, 1024},
		{5000, 1, 1024, 1024, 1},
	}
	for _, tt := range tests {
		w, h := fit(tt.w, tt.h, tt.limit)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("fit(%d, %d, %d) = %dx%d, want %dx%d", tt.w, tt.h, tt.limit, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestProcessPhotoRejects(t *testing.T) {
	if _, err := ProcessPhoto([]byte("not an image")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported for text, got %v", err)
	}
	if _, err := ProcessPhoto([]byte("GIF89a...")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported for GIF, got %v", err)
	}
	if _, err := ProcessPhoto(make([]byte, MaxBytes+1)); err == nil {
		t.Error("expected error for oversized upload")
	}
}
