// Package corpus defines the record model of the registry and the wire
// format used to persist records in the backing key-value store.
package corpus

import "strings"

// Status is the review state of a record.
type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known review states.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusVerified || s == StatusRejected
}

// Terminal reports whether no further transition is allowed from s.
// Verified and rejected are terminal; records are never deleted.
func (s Status) Terminal() bool {
	return s == StatusVerified || s == StatusRejected
}

// Record is one contributed language-sample entry. All fields except Status
// are set once at creation and never change afterwards.
type Record struct {
	ID            string
	EncryptedData string
	CreatedAt     int64 // unix seconds
	Owner         string
	Language      string
	Region        string
	Status        Status
}

// OwnedBy reports whether addr is the record's owner. Addresses are compared
// case-insensitively, the way wallet addresses usually are.
func (r *Record) OwnedBy(addr string) bool {
	return addr != "" && strings.EqualFold(r.Owner, addr)
}

// Submission is the plaintext a contributor submits. It is serialized to
// JSON and sealed by the envelope codec before it ever reaches the store.
type Submission struct {
	Language    string `json:"language"`
	Region      string `json:"region"`
	Content     string `json:"corpusData"`
	SubmittedAt int64  `json:"timestamp"` // unix milliseconds
}
