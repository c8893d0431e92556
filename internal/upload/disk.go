// Package upload stores payment receipts on local disk and hands back the
// public URL the order document references.
package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Disk writes receipts under <dir>/receipts and serves them from
// <urlHost>/uploads/receipts.
type Disk struct {
	dir     string
	urlHost string
}

func NewDisk(dir, urlHost string) (*Disk, error) {
	receipts := filepath.Join(dir, "receipts")
	if err := os.MkdirAll(receipts, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Disk{dir: dir, urlHost: strings.TrimRight(urlHost, "/")}, nil
}

// SaveReceipt streams the file to disk under a uuid-prefixed name, so clashing
// client filenames never overwrite each other.
func (d *Disk) SaveReceipt(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := uuid.NewString() + "-" + sanitize(filename)
	path := filepath.Join(d.dir, "receipts", name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create receipt file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write receipt file: %w", err)
	}
	return fmt.Sprintf("%s/uploads/receipts/%s", d.urlHost, name), nil
}

func sanitize(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "receipt"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, base)
}
