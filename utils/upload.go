package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	UploadRoot   = "uploads"
	VideoDir     = "uploads/videos"
	ThumbnailDir = "uploads/thumbnails"

	MaxVideoSize     = 500 << 20 // 500 MB
	MaxThumbnailSize = 10 << 20  // 10 MB
)

var videoExtensions = map[string]bool{
	".mp4": true, ".avi": true, ".mov": true, ".wmv": true,
	".flv": true, ".webm": true, ".mkv": true,
}

var imageExtensions = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".gif": true, ".webp": true,
}

// EnsureUploadDirs creates the on-disk upload layout at startup
func EnsureUploadDirs() error {
	for _, dir := range []string{UploadRoot, VideoDir, ThumbnailDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// uploadFilename builds a collision-resistant name. Timestamp plus random
// suffix, not a content hash: identical uploads get distinct files.
func uploadFilename(field, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixNano(), suffix, ext)
}

func checkVideoFile(file *multipart.FileHeader) error {
	if file.Size > MaxVideoSize {
		return fmt.Errorf("video exceeds the %d MB limit", MaxVideoSize>>20)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !videoExtensions[ext] {
		return fmt.Errorf("only video files are allowed")
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "video/") {
		return fmt.Errorf("only video files are allowed")
	}
	return nil
}

func checkImageFile(file *multipart.FileHeader) error {
	if file.Size > MaxThumbnailSize {
		return fmt.Errorf("image exceeds the %d MB limit", MaxThumbnailSize>>20)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return fmt.Errorf("only image files are allowed")
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("only image files are allowed")
	}
	return nil
}

// SaveVideo validates and stores an uploaded video, returning its public URL
func SaveVideo(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := checkVideoFile(file); err != nil {
		return "", err
	}
	name := uploadFilename("video", file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(VideoDir, name)); err != nil {
		return "", err
	}
	return "/uploads/videos/" + name, nil
}

// SaveThumbnail validates and stores an uploaded thumbnail, returning its public URL
func SaveThumbnail(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := checkImageFile(file); err != nil {
		return "", err
	}
	name := uploadFilename("thumbnail", file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(ThumbnailDir, name)); err != nil {
		return "", err
	}
	return "/uploads/thumbnails/" + name, nil
}
