// Command gedcomctl loads a GEDCOM file into memory and runs validation,
// partitioning, key randomization, or ad hoc relationship queries against
// it.
package main

import "github.com/cacack/gedcom-engine/cmd/gedcomctl/cmd"

func main() {
	cmd.Execute()
}
