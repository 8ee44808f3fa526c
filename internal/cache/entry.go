package cache

import (
	"encoding/json"
	"time"
)

// Entry is one stored query result.
type Entry struct {
	Key      string          `json:"key"`
	Data     json.RawMessage `json:"data"`
	StoredAt time.Time       `json:"stored_at"`
	StaleAt  time.Time       `json:"stale_at"`
}

// staleAt reports whether the entry is stale at t.
func (e *Entry) staleAt(t time.Time) bool {
	return !t.Before(e.StaleAt)
}

// Age is how long ago the entry was stored, measured at t.
func (e *Entry) Age(t time.Time) time.Duration {
	return t.Sub(e.StoredAt)
}

// Decode unmarshals the stored JSON into v. Each call yields an
// independent value.
func (e *Entry) Decode(v any) error {
	return json.Unmarshal(e.Data, v)
}
