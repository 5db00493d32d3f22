package salt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// snapshot is the on-disk cache format. One JSON document holds the full
// score table plus when it was captured.
type snapshot struct {
	CachedAt  string             `json:"cached_at"`
	CardCount int                `json:"card_count"`
	Cards     map[string]float64 `json:"cards"`
}

func readSnapshot(path string) (*snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse salt snapshot: %w", err)
	}
	return &snap, nil
}

func writeSnapshot(path string, snap *snapshot) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cache directory: %w", err)
		}
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode salt snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write salt snapshot: %w", err)
	}
	return nil
}
