package run

import (
	"crypto/rand"
	"encoding/json"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewRunID returns a fresh ULID identifying one sweep run.
func NewRunID() (string, error) {
	t := time.Now().UTC()
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// WriteReport writes the machine-readable JSON report to path.
func WriteReport(path string, rep *Report) error {
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0644)
}
