package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	"github.com/disintegration/imaging"
)

// ImageCache provides thread-safe caching of decoded images keyed by file path.
//
// Once an image is loaded, subsequent Load() calls for the same path return the
// cached copy without disk I/O. Decoding keeps the image's native storage, so a
// baseline JPEG stays an *image.YCbCr with its original Y, Cb and Cr planes.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/photo.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sample, err := imaging.SampleYCbCr(img, 10, 20)
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk if not cached.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     JPEG, PNG, GIF, TIFF and BMP.
//
// Returns:
//   - image.Image: The decoded image in its native color model. JPEG files
//     decode to *image.YCbCr (color) or *image.Gray (single component).
//   - error: Non-nil if the file cannot be opened or decoded.
//
// EXIF auto-orientation is not applied. Rotating the image would
// re-encode it as NRGBA and discard the stored YCbCr samples.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Len returns the number of images currently cached.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
//
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is "jpeg", "png", "gif", "tiff", "bmp", or "unknown".
	// Detection is based on file extension, not file contents.
	Format string `json:"format"`

	// ColorModel names the in-memory storage of the decoded image, for
	// example "ycbcr" for a color JPEG or "gray" for a grayscale one.
	ColorModel string `json:"color_model"`

	// ChromaSubsampling is the J:a:b ratio of the chroma planes (e.g. "4:2:0").
	// Empty for images that do not store YCbCr planes.
	ChromaSubsampling string `json:"chroma_subsampling,omitempty"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image and returns metadata about it.
//
// Parameters:
//   - cache: The image cache to use for loading. Must not be nil.
//   - path: Path to the image file.
//
// Returns:
//   - *ImageInfo: Metadata about the image.
//   - error: Non-nil if the image cannot be loaded or the file cannot be stat'd.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	bounds := img.Bounds()
	info := &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        formatName(path),
		FileSizeBytes: stat.Size(),
	}

	switch m := img.(type) {
	case *image.YCbCr:
		info.ColorModel = "ycbcr"
		info.ChromaSubsampling = subsampleName(m.SubsampleRatio)
	case *image.NYCbCrA:
		info.ColorModel = "nycbcra"
		info.ChromaSubsampling = subsampleName(m.SubsampleRatio)
	case *image.Gray, *image.Gray16:
		info.ColorModel = "gray"
	case *image.RGBA, *image.RGBA64:
		info.ColorModel = "rgba"
	case *image.NRGBA, *image.NRGBA64:
		info.ColorModel = "nrgba"
	case *image.CMYK:
		info.ColorModel = "cmyk"
	case *image.Paletted:
		info.ColorModel = "paletted"
	default:
		info.ColorModel = "other"
	}

	return info, nil
}

func formatName(path string) string {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "unknown"
	}
	switch f {
	case imaging.JPEG:
		return "jpeg"
	case imaging.PNG:
		return "png"
	case imaging.GIF:
		return "gif"
	case imaging.TIFF:
		return "tiff"
	case imaging.BMP:
		return "bmp"
	default:
		return "unknown"
	}
}

func subsampleName(r image.YCbCrSubsampleRatio) string {
	switch r {
	case image.YCbCrSubsampleRatio444:
		return "4:4:4"
	case image.YCbCrSubsampleRatio422:
		return "4:2:2"
	case image.YCbCrSubsampleRatio420:
		return "4:2:0"
	case image.YCbCrSubsampleRatio440:
		return "4:4:0"
	case image.YCbCrSubsampleRatio411:
		return "4:1:1"
	case image.YCbCrSubsampleRatio410:
		return "4:1:0"
	default:
		return ""
	}
}
