package corpus

import (
	"encoding/json"
	"fmt"
)

// recordPayload is the JSON document stored under a record key. The field
// names are part of the store contract and must not change.
type recordPayload struct {
	Data      string `json:"data"`
	Timestamp int64  `json:"timestamp"`
	Owner     string `json:"owner"`
	Language  string `json:"language"`
	Region    string `json:"region"`
	Status    Status `json:"status"`
}

// MarshalRecord serializes r into its stored JSON form.
func MarshalRecord(r *Record) ([]byte, error) {
	p := recordPayload{
		Data:      r.EncryptedData,
		Timestamp: r.CreatedAt,
		Owner:     r.Owner,
		Language:  r.Language,
		Region:    r.Region,
		Status:    r.Status,
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	return b, nil
}

// UnmarshalRecord parses a stored payload into a Record with the given id.
// An empty or unknown status falls back to pending, matching payloads
// written before the review workflow existed.
func UnmarshalRecord(id string, data []byte) (*Record, error) {
	var p recordPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	status := p.Status
	if !status.Valid() {
		status = StatusPending
	}
	return &Record{
		ID:            id,
		EncryptedData: p.Data,
		CreatedAt:     p.Timestamp,
		Owner:         p.Owner,
		Language:      p.Language,
		Region:        p.Region,
		Status:        status,
	}, nil
}

// MarshalIndex serializes the ordered list of record ids.
func MarshalIndex(ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal index: %w", err)
	}
	return b, nil
}

// UnmarshalIndex parses the stored index payload.
func UnmarshalIndex(data []byte) ([]string, error) {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	return ids, nil
}
