package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"minisite/app/models"
	"minisite/app/repositories"
)

// ErrNotImage is returned when an uploaded file does not look like a
// supported image format.
var ErrNotImage = errors.New("file is not a supported image type")

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// GalleryService handles image uploads and listing.
type GalleryService struct {
	imageRepo repositories.ImageRepository
	mediaDir  string
}

// NewGalleryService creates a new GalleryService storing files under mediaDir.
func NewGalleryService(imageRepo repositories.ImageRepository, mediaDir string) *GalleryService {
	return &GalleryService{imageRepo: imageRepo, mediaDir: mediaDir}
}

// SaveUpload writes the uploaded file under the media root and records it.
// The stored name is a fresh UUID so uploads never collide or overwrite; the
// record keeps the path relative to the media root.
func (s *GalleryService) SaveUpload(file io.Reader, filename, description string) (*models.Image, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return nil, ErrNotImage
	}

	imageDir := filepath.Join(s.mediaDir, "images")
	if err := os.MkdirAll(imageDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %v", err)
	}

	stored := uuid.New().String() + ext
	dst := filepath.Join(imageDir, stored)

	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %v", err)
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		os.Remove(dst)
		return nil, fmt.Errorf("failed to write file: %v", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return nil, fmt.Errorf("failed to write file: %v", err)
	}

	image := &models.Image{
		File:        path.Join("images", stored),
		Description: description,
	}
	image.BeforeCreate()

	if err := image.Validate(); err != nil {
		os.Remove(dst)
		return nil, err
	}

	if err := s.imageRepo.Create(image); err != nil {
		os.Remove(dst)
		return nil, err
	}
	return image, nil
}

// ListImages retrieves all gallery images, newest first.
func (s *GalleryService) ListImages() ([]*models.Image, error) {
	return s.imageRepo.List()
}
