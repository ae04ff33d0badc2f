package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/copa-admin/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
)

// LocalLogoStorage writes logos below a directory served by the API itself.
type LocalLogoStorage struct {
	dir           string
	publicBaseURL string
	logger        *logging.Logger
}

func NewLocalLogoStorage(dir, publicBaseURL string, logger *logging.Logger) (*LocalLogoStorage, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, crerr.New("local logo storage: directory is required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, crerr.Wrapf(err, "resolve logo directory %s", dir)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, crerr.Wrapf(err, "create logo directory %s", abs)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LocalLogoStorage{dir: abs, publicBaseURL: publicBaseURL, logger: logger}, nil
}

func (s *LocalLogoStorage) Dir() string {
	return s.dir
}

func (s *LocalLogoStorage) Upload(ctx context.Context, key, _ string, body io.Reader, size int64) (string, error) {
	target := filepath.Join(s.dir, filepath.FromSlash(key))
	if !strings.HasPrefix(target, s.dir+string(os.PathSeparator)) {
		return "", crerr.Newf("logo key escapes storage directory: %s", key)
	}

	buf, err := readBody(body, size)
	if err != nil {
		return "", err
	}
	defer bytebufferpool.Put(buf)

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", crerr.Wrapf(err, "create logo directory for %s", key)
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, buf.B, 0o644); err != nil {
		return "", crerr.Wrapf(err, "write logo %s", key)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return "", crerr.Wrapf(err, "move logo %s into place", key)
	}

	s.logger.InfoContext(ctx, "logo stored", "backend", "local", "key", key, "bytes", buf.Len())
	return publicURL(s.publicBaseURL, key), nil
}
