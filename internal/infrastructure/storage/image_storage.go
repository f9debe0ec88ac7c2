package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"mfgmarket/pkg/errors"
	"mfgmarket/pkg/logger"
)

// Resize targets. Originals are capped, not upscaled.
var (
	thumbnailSize = [2]int{200, 200}
	mediumSize    = [2]int{800, 600}
	originalSize  = [2]int{2000, 2000}
)

// ImageStorage writes product images to the local filesystem in three
// resolutions under {uploadDir}/products/{productID}/{variant}/.
type ImageStorage struct {
	uploadDir    string
	maxFileSize  int64
	allowedTypes []string
}

func NewImageStorage(uploadDir string, maxFileSize int64, allowedTypes []string) *ImageStorage {
	return &ImageStorage{
		uploadDir:    uploadDir,
		maxFileSize:  maxFileSize,
		allowedTypes: allowedTypes,
	}
}

type StoredImage struct {
	Filename      string
	OriginalPath  string
	MediumPath    string
	ThumbnailPath string
}

// Store validates, decodes and persists one uploaded image. All failures
// surface as Validation errors, never as crashes.
func (s *ImageStorage) Store(productID, filename string, size int64, file io.Reader) (*StoredImage, error) {
	if size > s.maxFileSize {
		return nil, errors.Validation(fmt.Sprintf("File size exceeds maximum allowed size of %dMB", s.maxFileSize/1024/1024), nil)
	}

	ext := extension(filename)
	if !s.allowedExtension(ext) {
		return nil, errors.Validation(fmt.Sprintf("Invalid file type. Allowed: %s", strings.Join(s.allowedTypes, ", ")), nil)
	}

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Validation("Uploaded file is not a valid image", err)
	}

	uniqueName := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	productDir := filepath.Join(s.uploadDir, "products", productID)

	variants := []struct {
		dir     string
		width   int
		height  int
		quality int
	}{
		{"original", originalSize[0], originalSize[1], 90},
		{"medium", mediumSize[0], mediumSize[1], 85},
		{"thumbnail", thumbnailSize[0], thumbnailSize[1], 80},
	}

	stored := &StoredImage{Filename: uniqueName}
	for _, v := range variants {
		dir := filepath.Join(productDir, v.dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Internal("Failed to prepare upload directory", err)
		}

		resized := imaging.Fit(img, v.width, v.height, imaging.Lanczos)
		path := filepath.Join(dir, uniqueName)
		if err := imaging.Save(resized, path, imaging.JPEGQuality(v.quality)); err != nil {
			return nil, errors.Validation("Failed to process image", err)
		}

		switch v.dir {
		case "original":
			stored.OriginalPath = path
		case "medium":
			stored.MediumPath = path
		case "thumbnail":
			stored.ThumbnailPath = path
		}
	}

	logger.Info("Stored image for product %s: %s", productID, uniqueName)
	return stored, nil
}

// Remove deletes every stored variant for a product.
func (s *ImageStorage) Remove(productID string) error {
	return os.RemoveAll(filepath.Join(s.uploadDir, "products", productID))
}

func (s *ImageStorage) allowedExtension(ext string) bool {
	for _, allowed := range s.allowedTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}

func extension(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return ext
}
