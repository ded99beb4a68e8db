package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

// DiskKVRepository stores each key as a file under a base directory using
// diskv, with an in-memory read cache.
type DiskKVRepository struct {
	d *diskv.Diskv
}

// NewDiskKVRepository opens (lazily creating) the store at basePath.
func NewDiskKVRepository(basePath string, cacheBytes uint64) *DiskKVRepository {
	return &DiskKVRepository{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: flatTransform,
		InverseTransform:  flatInverse,
		CacheSizeMax:      cacheBytes,
	})}
}

func flatTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{}, FileName: key}
}

func flatInverse(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}

// Get reads key from disk.
func (r *DiskKVRepository) Get(_ context.Context, key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	val, err := r.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, appErrors.ErrKeyNotFound
		}
		return nil, fmt.Errorf("diskv read %s: %w", key, err)
	}
	return val, nil
}

// Set writes key and syncs the file.
func (r *DiskKVRepository) Set(_ context.Context, key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := r.d.WriteStream(key, bytes.NewReader(value), true); err != nil {
		return fmt.Errorf("diskv write %s: %w", key, err)
	}
	return nil
}

// Delete erases key. Missing keys are ignored.
func (r *DiskKVRepository) Delete(_ context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := r.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("diskv erase %s: %w", key, err)
	}
	return nil
}

// Keys lists stored keys in lexical order.
func (r *DiskKVRepository) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	for key := range r.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}
