package game

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage creates a PNG of the given size for testing purposes.
func createTestImage(t *testing.T, path string, w, h int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	green := color.RGBA{R: 96, G: 160, B: 64, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, green)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create image: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("Failed to encode image: %v", err)
	}
}

// TestLoadImage tests loading and caching of an image from disk.
func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets", "Fields.png")
	createTestImage(t, path, 96, 112)

	rm := NewResourceManager()
	if rm.ImageCount() != 0 {
		t.Fatalf("Expected empty cache, got %d images", rm.ImageCount())
	}

	img, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 96 || b.Dy() != 112 {
		t.Errorf("Expected 96x112 image, got %dx%d", b.Dx(), b.Dy())
	}

	again, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("Second LoadImage failed: %v", err)
	}
	if again != img {
		t.Error("Second LoadImage should return the cached image")
	}
	if rm.ImageCount() != 1 {
		t.Errorf("Expected 1 cached image, got %d", rm.ImageCount())
	}
}

// TestLoadImageErrors tests missing and corrupted files.
func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	rm := NewResourceManager()

	if _, err := rm.LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}

	corrupted := filepath.Join(dir, "corrupted.png")
	if err := os.WriteFile(corrupted, []byte("not a png"), 0644); err != nil {
		t.Fatalf("Failed to write corrupted file: %v", err)
	}
	if _, err := rm.LoadImage(corrupted); err == nil {
		t.Error("Expected error for corrupted file")
	}

	if rm.ImageCount() != 0 {
		t.Errorf("Failed loads must not be cached, got %d images", rm.ImageCount())
	}
}
