package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxPictureSizeBytes = 10 << 20 // 10MB

var allowedPictureExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// FileService stores employee profile pictures on local disk under an
// uploads directory, one uuid-named file per picture.
type FileService interface {
	SaveEmployeePicture(file *multipart.FileHeader) (string, error)
	RemovePicture(path string)
}

type fileService struct {
	baseDir string
}

// NewFileService returns a FileService rooted at baseDir (e.g. "uploads").
func NewFileService(baseDir string) FileService {
	return &fileService{baseDir: baseDir}
}

func (s *fileService) SaveEmployeePicture(file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		return "", errors.New("no file provided or file is empty")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPictureExtensions[ext] {
		return "", errors.New("only JPG, PNG, and GIF files are allowed")
	}

	if file.Size > maxPictureSizeBytes {
		return "", errors.New("file size cannot exceed 10MB")
	}

	dir := filepath.Join(s.baseDir, "employees")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(dir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}

	return dst, nil
}

// RemovePicture deletes a previously stored picture. Best effort — a
// missing file is not an error worth surfacing to the caller.
func (s *fileService) RemovePicture(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}
