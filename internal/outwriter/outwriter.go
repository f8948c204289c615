// Package outwriter has output and writer logic for the mined dataset.
package outwriter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mlcortez/footprint/schema"
)

// ErrMissingDataset signals that a downstream stage cannot find the
// produced dataset artifact. It is unrecoverable by design: the caller
// surfaces a user-facing message and terminates.
var ErrMissingDataset = errors.New("dataset artifact not found")

// WriteDataset serializes the fully assembled dataset and writes it in a
// single call. The dataset is built entirely in memory first, so a failed
// run never leaves a partial artifact behind.
func WriteDataset(dataset *schema.Dataset, path string) error {
	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dataset to %q: %w", path, err)
	}
	return nil
}

// LoadDataset reads a previously written dataset artifact. A missing file
// returns ErrMissingDataset so callers can fail fast with a diagnostic
// pointing at the mine command.
func LoadDataset(path string) (*schema.Dataset, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %q. Run 'footprint mine' first", ErrMissingDataset, path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read dataset %q: %w", path, err)
	}
	var dataset schema.Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("failed to decode dataset %q: %w", path, err)
	}
	return &dataset, nil
}
