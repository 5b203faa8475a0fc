package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ZombieFighters/internal/model"
)

// LoadSnapshot reads a snapshot written by SaveSnapshot. The ledger never
// restores itself from it; it is read back only for reporting.
func LoadSnapshot(filePath string) (*model.Snapshot, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// SaveSnapshot writes the snapshot to a JSON file, creating parent directories.
func SaveSnapshot(filePath string, snap *model.Snapshot) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
