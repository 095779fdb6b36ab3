package examples

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Overrides is the document published by the data-refresh job:
//
//	values:
//	  pib_france: 2.98e12
//	  btc_market_cap: 1.5e12
type Overrides struct {
	Values map[string]float64 `yaml:"values"`
}

// OverrideReport summarises an ApplyOverrides run.
type OverrideReport struct {
	Applied []string
	Skipped []string
}

// ApplyOverrides decodes an Overrides document from r and patches store.
// Entries that Patch refuses (unknown id, non-finite value) are reported as
// skipped rather than failing the whole refresh.
func ApplyOverrides(logger *zap.Logger, store *Store, r io.Reader) (OverrideReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var doc Overrides
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return OverrideReport{}, nil
		}
		return OverrideReport{}, fmt.Errorf("failed to decode example overrides: %w", err)
	}

	ids := make([]string, 0, len(doc.Values))
	for id := range doc.Values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var report OverrideReport
	for _, id := range ids {
		value := doc.Values[id]
		if store.Patch(id, value) {
			report.Applied = append(report.Applied, id)
			continue
		}
		report.Skipped = append(report.Skipped, id)
		logger.Warn("example override skipped",
			zap.String("op", "examples.ApplyOverrides"),
			zap.String("id", id),
			zap.Float64("value", value),
		)
	}

	logger.Debug("example overrides applied",
		zap.String("op", "examples.ApplyOverrides"),
		zap.Int("applied", len(report.Applied)),
		zap.Int("skipped", len(report.Skipped)),
	)
	return report, nil
}

// LoadOverridesFile applies the overrides stored at path. A missing file is
// not an error: the catalog keeps its built-in values.
func LoadOverridesFile(logger *zap.Logger, store *Store, path string) (OverrideReport, error) {
	if path == "" {
		return OverrideReport{}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return OverrideReport{}, nil
		}
		return OverrideReport{}, fmt.Errorf("failed to open example overrides: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return ApplyOverrides(logger, store, file)
}
