package cmd

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/cacack/gedcom-engine/report"
	"github.com/cacack/gedcom-engine/validate"
)

var validateReportPath string

var validateCmd = &cobra.Command{
	Use:   "validate <file.ged>",
	Short: "Check referential and structural integrity of a GEDCOM file",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateReportPath, "report", "",
		"Write a YAML validation report to this path")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	_, db, err := loadDatabase(args[0])
	if err != nil {
		return err
	}

	log, stats := validate.Run(db)
	fmt.Printf("checked %d persons, %d families: ", stats.PersonsChecked, stats.FamiliesChecked)
	if log.OK() {
		color.Green.Println("OK")
	} else {
		color.Red.Printf("%d issue(s)\n", log.Len())
		for _, issue := range log.Issues() {
			fmt.Println("  " + issue.Error())
		}
	}

	if validateReportPath != "" {
		if err := writeReport(validateReportPath, report.Validation(log, stats)); err != nil {
			return err
		}
	}
	if !log.OK() {
		os.Exit(1)
	}
	return nil
}
