package log

import (
	"errors"
	"time"
)

// ErrNotOpen is returned by operations that need the database when [Open]
// has not been called or failed.
var ErrNotOpen = errors.New("audit log is not open")

// Prune deletes entries that started before the cutoff and returns how
// many were removed. With dryRun set, entries are counted but kept.
func Prune(before time.Time, dryRun bool) (int64, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return 0, ErrNotOpen
	}

	cutoff := before.UnixMilli()
	if dryRun {
		var n int64
		err := l.db.QueryRow(`SELECT COUNT(*) FROM log WHERE start < ?`, cutoff).Scan(&n)
		return n, err
	}

	res, err := l.db.Exec(`DELETE FROM log WHERE start < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
