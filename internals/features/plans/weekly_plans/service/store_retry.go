package service

import (
	"database/sql/driver"
	"errors"
	"net"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Store reads go through a small retry loop: a dropped pooled connection
// should not fail a week view. Writes are never retried (not idempotent),
// and application errors are never retried anywhere.
const (
	storeReadRetries = 2
	storeReadBackoff = 100 * time.Millisecond
)

func withReadRetry(op func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = op()
		if err == nil || attempt >= storeReadRetries || !isTransientStoreErr(err) {
			return err
		}
		time.Sleep(time.Duration(attempt+1) * storeReadBackoff)
	}
}

func isTransientStoreErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "connection reset") ||
		strings.Contains(s, "broken pipe") ||
		strings.Contains(s, "i/o timeout")
}

// isUniqueViolation: Postgres unique violation (SQLSTATE 23505). Substring
// match keeps it portable across drivers (tests run on sqlite).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
