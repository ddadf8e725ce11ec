package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/cacack/gedcom-engine/database"
	"github.com/cacack/gedcom-engine/sequence"
)

var queryXRef string

var queryCmd = &cobra.Command{
	Use:   "query <file.ged>",
	Short: "Print a person's parents, spouses, and children",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryXRef, "xref", "", "Record key of the person to query (required)")
	queryCmd.MarkFlagRequired("xref")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	_, db, err := loadDatabase(args[0])
	if err != nil {
		return err
	}

	person, ok := db.Records.Lookup(queryXRef)
	if !ok {
		return fmt.Errorf("no record with key %s", queryXRef)
	}

	color.Bold.Printf("%s: %s\n", person.Key(), database.FirstName(person))

	printGroup(db, "Fathers", sequence.PersonToFathers(db, person))
	printGroup(db, "Mothers", sequence.PersonToMothers(db, person))
	printGroup(db, "Spouses", sequence.PersonToSpouses(db, person))
	printGroup(db, "Children", sequence.PersonToChildren(db, person))
	return nil
}

func printGroup(db *database.Database, label string, seq *sequence.Sequence) {
	color.Cyan.Printf("%s:\n", label)
	if seq.Len() == 0 {
		fmt.Println("  (none)")
		return
	}
	seq.NameSort()
	for i := 0; i < seq.Len(); i++ {
		key, name, _ := seq.Element(i)
		fmt.Printf("  %s  %s\n", runewidth.FillRight(key, 8), name)
	}
}
