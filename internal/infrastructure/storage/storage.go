package storage

import (
	"io"
	"net/url"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

// ErrSizeMismatch is returned when the body length differs from the declared size.
var ErrSizeMismatch = crerr.New("logo body size does not match declared size")

// readBody drains body into a pooled buffer. Callers must release the buffer
// with bytebufferpool.Put.
func readBody(body io.Reader, size int64) (*bytebufferpool.ByteBuffer, error) {
	buf := bytebufferpool.Get()
	limit := size
	if limit <= 0 {
		limit = 1 << 30
	}
	n, err := buf.ReadFrom(io.LimitReader(body, limit+1))
	if err != nil {
		bytebufferpool.Put(buf)
		return nil, crerr.Wrap(err, "read logo body")
	}
	if size > 0 && n != size {
		bytebufferpool.Put(buf)
		return nil, crerr.Wrapf(ErrSizeMismatch, "declared=%d read=%d", size, n)
	}
	return buf, nil
}

func publicURL(baseURL, key string) string {
	key = strings.TrimLeft(key, "/")
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return "/" + key
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return baseURL + "/" + key
	}
	return parsed.JoinPath(key).String()
}
