package bank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ff66ccff/SearchForPE/internal/config"
	domain "github.com/ff66ccff/SearchForPE/internal/domain/bank"
)

// Repository defines persistence operations for the question bank.
type Repository interface {
	Load(ctx context.Context) (domain.Bank, error)
	Save(ctx context.Context, b domain.Bank) error
}

// FileRepository persists the question bank to a JSON file on disk.
type FileRepository struct {
	// path is the filesystem location of the bank JSON file.
	path string
	// mu protects concurrent access to the bank file.
	mu sync.Mutex
}

// ErrNotFound is returned when the bank file does not exist yet.
var ErrNotFound = errors.New("question bank not found")

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the question bank from disk.
func (r *FileRepository) Load(_ context.Context) (domain.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read bank file: %w", err)
	}

	var b domain.Bank
	if err = json.Unmarshal(contents, &b); err != nil {
		return nil, fmt.Errorf("decode bank file: %w", err)
	}

	return b, nil
}

// Save writes the question bank to disk using the two-space indented layout.
func (r *FileRepository) Save(_ context.Context, b domain.Bank) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bank: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write bank file: %w", err)
	}

	return nil
}
