package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/cricklet/speedscope/config"
)

// OutputManager writes report CSV files into a directory.
// A nil *OutputManager is valid and discards everything.
type OutputManager struct {
	dir            string
	transformsFile *os.File
	probesFile     *os.File

	// Track if headers have been written
	transformsHeaderWritten bool
	probesHeaderWritten     bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "transforms.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating transforms.csv: %w", err)
	}
	om.transformsFile = f

	f, err = os.Create(filepath.Join(dir, "probes.csv"))
	if err != nil {
		om.transformsFile.Close()
		return nil, fmt.Errorf("creating probes.csv: %w", err)
	}
	om.probesFile = f

	return om, nil
}

// WriteConfig saves the configuration used for the report as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTransform appends a record to transforms.csv.
func (om *OutputManager) WriteTransform(rec TransformRecord) error {
	if om == nil {
		return nil
	}

	records := []TransformRecord{rec}

	if !om.transformsHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.transformsFile); err != nil {
			return fmt.Errorf("writing transform: %w", err)
		}
		om.transformsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.transformsFile); err != nil {
			return fmt.Errorf("writing transform: %w", err)
		}
	}

	return nil
}

// WriteProbes appends records to probes.csv.
func (om *OutputManager) WriteProbes(records []ProbeRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}

	if !om.probesHeaderWritten {
		if err := gocsv.Marshal(records, om.probesFile); err != nil {
			return fmt.Errorf("writing probes: %w", err)
		}
		om.probesHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.probesFile); err != nil {
			return fmt.Errorf("writing probes: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.transformsFile != nil {
		if err := om.transformsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.probesFile != nil {
		if err := om.probesFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
