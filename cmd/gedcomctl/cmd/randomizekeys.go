package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cacack/gedcom-engine/gnode"
	"github.com/cacack/gedcom-engine/keys"
	"github.com/cacack/gedcom-engine/render"
)

var randomizeKeysOutput string

var randomizeKeysCmd = &cobra.Command{
	Use:   "randomize-keys <file.ged>",
	Short: "Rewrite a GEDCOM file with every record key shuffled",
	Long: `randomize-keys reads a GEDCOM file, assigns every record a fresh
random key of the same sigil, rewrites every FAMC/FAMS/HUSB/WIFE/CHIL (or
any other pointer-valued) line to match, and writes the result back out.`,
	Args: cobra.ExactArgs(1),
	RunE: runRandomizeKeys,
}

func init() {
	randomizeKeysCmd.Flags().StringVarP(&randomizeKeysOutput, "output", "o", "",
		"Write the rekeyed file here instead of stdout")
	rootCmd.AddCommand(randomizeKeysCmd)
}

func runRandomizeKeys(cmd *cobra.Command, args []string) error {
	_, _, records, err := loadAllRecords(args[0])
	if err != nil {
		return err
	}

	roots := make([]gnode.Ref, 0, len(records))
	counts := make(map[gnode.RecordType]int)
	for _, rec := range records {
		roots = append(roots, rec.Root)
		if rec.Root.Key() == "" {
			continue
		}
		if rt, ok := rec.Root.RecordType(); ok {
			counts[rt]++
		}
	}

	remapper := keys.NewRemapper(counts)
	remap := make(map[string]string, len(roots))
	for _, root := range roots {
		if root.Key() == "" {
			continue
		}
		if rt, ok := root.RecordType(); ok {
			remap[root.Key()] = remapper.Next(rt)
		}
	}

	for _, root := range roots {
		if newKey, ok := remap[root.Key()]; ok {
			root.SetKey(newKey)
		}
		for node := range gnode.Traverse(root) {
			if newKey, ok := remap[node.Value()]; ok && keys.IsKey(node.Value()) {
				node.SetValue(newKey)
			}
		}
	}

	out := os.Stdout
	if randomizeKeysOutput != "" {
		f, err := os.Create(randomizeKeysOutput) // #nosec G304 -- CLI tool accepts user-provided paths
		if err != nil {
			return fmt.Errorf("creating %s: %w", randomizeKeysOutput, err)
		}
		defer f.Close()
		out = f
	}

	return render.WriteAll(out, func(yield func(gnode.Ref) bool) {
		for _, root := range roots {
			if !yield(root) {
				return
			}
		}
	}, nil)
}
