package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata describes an ingested input file.
type Metadata struct {
	Source    string `json:"source"`          // file path as given
	Format    string `json:"format"`          // pdf, docx, doc, text, markdown or html
	Timestamp string `json:"timestamp"`       // RFC3339 format
	Hash      string `json:"hash"`            // SHA256 hex digest of the raw bytes
	Bytes     int    `json:"bytes"`           // raw size
	Title     string `json:"title,omitempty"` // HTML <title>, when present
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content []byte, source, format string) *Metadata {
	return &Metadata{
		Source:    source,
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Bytes:     len(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
