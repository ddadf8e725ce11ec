package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	logLevel   string
	logFormat  string
	searchPath string
)

var rootCmd = &cobra.Command{
	Use:   "gedcomctl",
	Short: "Inspect and transform GEDCOM genealogy files",
	Long: `gedcomctl loads a GEDCOM file into an in-memory database and runs
one of several operations against it:

  - validate         check referential and structural integrity
  - partition        decompose the file into connected family trees
  - randomize-keys    write the file back out with shuffled record keys
  - query            print parents, spouses, and children of a person`,
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"Log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&searchPath, "search-path", "",
		"Directories to search for a GEDCOM file given by name only, colon-separated")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("search.path", rootCmd.PersistentFlags().Lookup("search-path"))
	viper.BindEnv("search.path", "DE_GEDCOM_PATH")
}

// resolveFile finds path on disk, trying it verbatim first and then, if
// it isn't found and carries no directory component, each colon-separated
// directory from --search-path / DE_GEDCOM_PATH, the way the source's
// resolveFile walks its own search path.
func resolveFile(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if filepath.Dir(path) != "." {
		return "", fmt.Errorf("gedcom file not found: %s", path)
	}
	for _, dir := range filepath.SplitList(viper.GetString("search.path")) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("gedcom file not found: %s", path)
}
