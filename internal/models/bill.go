package models

import "time"

// Bill is a scanned proof of purchase attached to one transaction.
// The payload is opaque to the ledger.
type Bill struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"`
	Data       []byte    `json:"data"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// NewBill builds a Bill for payload, deriving Size from the data.
func NewBill(name, mediaType string, data []byte, uploadedAt time.Time) Bill {
	return Bill{
		Name:       name,
		Type:       mediaType,
		Size:       int64(len(data)),
		Data:       data,
		UploadedAt: uploadedAt,
	}
}

// BillMap holds at most one bill per transaction ID.
type BillMap map[string]Bill

// Clone returns a shallow copy; bill payloads are shared because they are never mutated.
func (m BillMap) Clone() BillMap {
	out := make(BillMap, len(m))
	for id, bill := range m {
		out[id] = bill
	}
	return out
}

// Has reports whether a bill is attached to id.
func (m BillMap) Has(id string) bool {
	_, ok := m[id]
	return ok
}
