package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

// envReader reads typed variables and collects every parse or range error.
// A blank variable always falls back to the default.
type envReader struct {
	errs []error
}

func (r *envReader) lookup(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(key))
	return value, value != ""
}

func (r *envReader) fail(format string, args ...any) {
	r.errs = append(r.errs, fmt.Errorf(format, args...))
}

func (r *envReader) require(ok bool, msg string) {
	if !ok {
		r.errs = append(r.errs, errors.New(msg))
	}
}

func (r *envReader) err() error {
	return errors.Join(r.errs...)
}

func (r *envReader) str(key, fallback string) string {
	if value, ok := r.lookup(key); ok {
		return value
	}
	return fallback
}

// oneOf lower-cases the value and rejects anything outside valid.
func (r *envReader) oneOf(key, fallback string, valid ...string) string {
	value := strings.ToLower(r.str(key, fallback))
	if !slices.Contains(valid, value) {
		r.fail("invalid %s %q: valid values are %s", key, value, strings.Join(valid, ", "))
		return fallback
	}
	return value
}

func (r *envReader) bool(key string, fallback bool) bool {
	raw, ok := r.lookup(key)
	if !ok {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		r.fail("parse %s: %w", key, err)
		return fallback
	}
	return value
}

func (r *envReader) int(key string, fallback, minimum int) int {
	return int(r.int64(key, int64(fallback), int64(minimum)))
}

func (r *envReader) int64(key string, fallback, minimum int64) int64 {
	raw, ok := r.lookup(key)
	if !ok {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		r.fail("parse %s: %w", key, err)
		return fallback
	}
	if value < minimum {
		r.fail("%s must be >= %d", key, minimum)
		return fallback
	}
	return value
}

// duration rejects negative values, and zero unless allowZero is set.
func (r *envReader) duration(key string, fallback time.Duration, allowZero bool) time.Duration {
	raw, ok := r.lookup(key)
	if !ok {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		r.fail("parse %s: %w", key, err)
		return fallback
	}
	switch {
	case value < 0:
		r.fail("%s must be >= 0", key)
		return fallback
	case value == 0 && !allowZero:
		r.fail("%s must be > 0", key)
		return fallback
	}
	return value
}
