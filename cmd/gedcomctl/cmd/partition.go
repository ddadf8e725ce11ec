package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/cacack/gedcom-engine/partition"
	"github.com/cacack/gedcom-engine/report"
)

var partitionReportPath string

var partitionCmd = &cobra.Command{
	Use:   "partition <file.ged>",
	Short: "Decompose a GEDCOM file into connected family trees",
	Args:  cobra.ExactArgs(1),
	RunE:  runPartition,
}

func init() {
	partitionCmd.Flags().StringVar(&partitionReportPath, "report", "",
		"Write a YAML partition report to this path")
	rootCmd.AddCommand(partitionCmd)
}

func runPartition(cmd *cobra.Command, args []string) error {
	_, db, err := loadDatabase(args[0])
	if err != nil {
		return err
	}

	components := partition.Partition(db)
	color.Bold.Printf("%d connected component(s)\n", len(components))
	for i, comp := range components {
		counts := partition.Connections(db, comp)
		topKey, topScore := partition.MostConnected(counts)
		fmt.Printf("  [%d] %d person(s), most connected: %s (score %d)\n",
			i, comp.Len(), topKey, topScore)
	}

	if partitionReportPath != "" {
		if err := writeReport(partitionReportPath, report.Partition(db, components)); err != nil {
			return err
		}
	}
	return nil
}
