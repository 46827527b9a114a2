// Package viz writes the artifacts consumed by the external plotting
// collaborator: the full bid history and the run summary. Plot rendering
// itself happens outside this module; only the input contract lives here.
package viz

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"

	"github.com/auctionlab/bidsim/core"
)

const (
	historyJSONFile = "bid_history.json"
	historyCBORFile = "bid_history.cbor"
	summaryJSONFile = "summary.json"
)

// Export writes bid_history.json, summary.json and a compact
// bid_history.cbor archive into dir, creating the directory if needed.
func Export(dir string, history []core.BidRecord, summary core.SimulationSummary) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	if err := writeJSON(filepath.Join(dir, historyJSONFile), history); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, summaryJSONFile), summary); err != nil {
		return err
	}

	encoded, err := cbor.Marshal(history)
	if err != nil {
		return fmt.Errorf("encoding history archive: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, historyCBORFile), encoded, 0o644); err != nil {
		return fmt.Errorf("writing history archive: %w", err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
