package game

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"log"
	"os"

	"github.com/decker502/terrarium/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResourceManager is responsible for loading and caching image assets.
// Images are loaded only once and reused by every entity that references them.
//
// Lookup order for a path:
//   - the embedded filesystem, when pkg/embedded is initialized and the path exists there
//   - the OS filesystem otherwise (development builds, tests)
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The cache is a plain Go map and is only
// accessed from the game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager()
//	img, err := rm.LoadImage("assets/Fields.png")
//	if err != nil {
//	    return err
//	}
type ResourceManager struct {
	imageCache map[string]*ebiten.Image // Cache for loaded images: path -> Image
}

// NewResourceManager creates a ResourceManager with an empty cache.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Returns an error if the file cannot be opened or decoded; never panics.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := openResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	log.Printf("[ResourceManager] Loaded image %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return ebitenImg, nil
}

// ImageCount returns the number of cached images.
func (rm *ResourceManager) ImageCount() int {
	return len(rm.imageCache)
}

// openResource opens a resource from the embedded filesystem or disk.
func openResource(path string) (io.ReadCloser, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.Open(path)
	}
	return os.Open(path)
}
