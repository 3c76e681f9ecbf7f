package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveUploadedFile streams a multipart upload into destDir under a random
// name, preserving the original extension. Returns the stored filename. The
// caller only records a reference to the file after this returns, so a crash
// mid-upload can orphan a file but never produce a dangling record.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	filename := uuid.NewString() + filepath.Ext(file.Filename)

	dst, err := os.Create(filepath.Join(destDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	return filename, nil
}

// ReadUploadedFile buffers a multipart upload in memory. Used for images that
// are forwarded inline to the AI provider rather than stored.
func ReadUploadedFile(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}
