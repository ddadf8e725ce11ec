package cmd

import (
	"fmt"
	"os"

	"github.com/cacack/gedcom-engine/report"
)

// writeReport marshals v as YAML and writes it to path.
func writeReport(path string, v any) error {
	f, err := os.Create(path) // #nosec G304 -- CLI tool accepts user-provided paths
	if err != nil {
		return fmt.Errorf("creating report %s: %w", path, err)
	}
	defer f.Close()
	return report.WriteYAML(f, v)
}
