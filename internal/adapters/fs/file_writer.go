package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// FileWriterAdapter handles file system operations for project scaffolding
type FileWriterAdapter struct {
	projectRoot string
}

// NewFileWriterAdapter creates a new file writer adapter
func NewFileWriterAdapter(cfg *config.RuntimeConfig) (*FileWriterAdapter, error) {
	return &FileWriterAdapter{projectRoot: cfg.ProjectRoot}, nil
}

// resolve anchors relative paths at the project root
func (f *FileWriterAdapter) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(f.projectRoot, path)
}

// WriteFile writes content to a file
func (f *FileWriterAdapter) WriteFile(ctx context.Context, path string, content string) error {
	return os.WriteFile(f.resolve(path), []byte(content), 0644)
}

// FileExists checks if a file exists
func (f *FileWriterAdapter) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(f.resolve(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// EnsureDirectory ensures a directory exists
func (f *FileWriterAdapter) EnsureDirectory(ctx context.Context, path string) error {
	return os.MkdirAll(f.resolve(path), 0755)
}

// Ensure the adapter implements the interface
var _ usecase.FileWriter = (*FileWriterAdapter)(nil)
