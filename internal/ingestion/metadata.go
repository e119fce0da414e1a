package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/jonathan/job-compare/internal/types"
)

// SourceMetadata records what was read from one source file.
type SourceMetadata struct {
	Company  types.Company `json:"company"`
	Path     string        `json:"path"`
	Hash     string        `json:"hash"` // SHA256 hex digest of the file
	Rows     int           `json:"rows"`
	Rejected int           `json:"rejected"`
	LoadedAt string        `json:"loaded_at"` // RFC3339
}

func newSourceMetadata(spec SourceSpec, content []byte) *SourceMetadata {
	return &SourceMetadata{
		Company:  spec.Company,
		Path:     spec.Path,
		Hash:     computeHash(content),
		LoadedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// computeHash computes the SHA256 of content and returns it hex encoded.
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
