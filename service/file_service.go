package service

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/mazikuben/construction-be/utils"
)

const (
	receiptsSubdir  = "receipts"
	inventorySubdir = "inventory"
)

// FileService owns the upload directories for expense receipts and inventory
// images. Files land on disk before any database record references them.
type FileService struct {
	uploadDir string
}

func NewFileService(uploadDir string) *FileService {
	for _, sub := range []string{receiptsSubdir, inventorySubdir} {
		if err := os.MkdirAll(filepath.Join(uploadDir, sub), 0755); err != nil {
			panic(err)
		}
	}
	return &FileService{
		uploadDir: uploadDir,
	}
}

func (s *FileService) ReceiptsDir() string {
	return filepath.Join(s.uploadDir, receiptsSubdir)
}

func (s *FileService) InventoryImagesDir() string {
	return filepath.Join(s.uploadDir, inventorySubdir)
}

// SaveReceipt stores an uploaded receipt and returns its public URL path.
func (s *FileService) SaveReceipt(file *multipart.FileHeader) (string, error) {
	filename, err := utils.SaveUploadedFile(file, s.ReceiptsDir())
	if err != nil {
		return "", err
	}
	return "/receipts/" + filename, nil
}

// SaveInventoryImage stores an uploaded item image and returns its public URL
// path.
func (s *FileService) SaveInventoryImage(file *multipart.FileHeader) (string, error) {
	filename, err := utils.SaveUploadedFile(file, s.InventoryImagesDir())
	if err != nil {
		return "", err
	}
	return "/inventory-images/" + filename, nil
}

// ReceiptPath maps a receipt filename back to its on-disk location, refusing
// path traversal.
func (s *FileService) ReceiptPath(filename string) (string, bool) {
	if filename != filepath.Base(filename) {
		return "", false
	}
	path := filepath.Join(s.ReceiptsDir(), filename)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
