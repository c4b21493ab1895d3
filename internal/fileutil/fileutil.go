package fileutil

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ErrExists reports that the destination already exists and overwrite was not requested.
var ErrExists = errors.New("destination already exists")

const (
	lockFileName      = ".gedcard.lock"
	lockRetryInterval = 50 * time.Millisecond
)

// WriteResult describes a completed write.
type WriteResult struct {
	Path   string
	Size   int64
	SHA256 string
}

// WriteFileAtomic streams data into a temporary file next to dst and renames it
// into place once the size and hash check out. An existing dst is only replaced
// when overwrite is true.
func WriteFileAtomic(dst string, data []byte, mode os.FileMode, overwrite bool) (WriteResult, error) {
	if !overwrite {
		if _, err := os.Stat(dst); err == nil {
			return WriteResult{}, fmt.Errorf("%w: %s", ErrExists, dst)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return WriteResult{}, fmt.Errorf("stat destination: %w", err)
		}
	}

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return WriteResult{}, fmt.Errorf("create directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return WriteResult{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	hasher := sha256.New()
	written, err := io.Copy(io.MultiWriter(tmp, hasher), bytes.NewReader(data))
	if err != nil {
		return WriteResult{}, fmt.Errorf("write temp file: %w", err)
	}
	if written != int64(len(data)) {
		return WriteResult{}, fmt.Errorf("write size mismatch: expected %d bytes, wrote %d bytes", len(data), written)
	}
	if err := tmp.Chmod(mode); err != nil {
		return WriteResult{}, fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return WriteResult{}, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		return WriteResult{}, fmt.Errorf("rename into place: %w", err)
	}

	return WriteResult{
		Path:   dst,
		Size:   written,
		SHA256: hex.EncodeToString(hasher.Sum(nil)),
	}, nil
}

// WithDirLock runs fn while holding an exclusive flock on dir. Concurrent
// writers into the same directory are serialized.
func WithDirLock(ctx context.Context, dir string, fn func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	lock := flock.New(filepath.Join(dir, lockFileName))
	ok, err := lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("acquire lock: %s is busy", dir)
	}
	defer func() {
		_ = lock.Unlock()
	}()
	return fn()
}
