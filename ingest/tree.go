package ingest

import (
	"fmt"

	"github.com/cacack/gedcom-engine/gnode"
)

// buildTree turns one record's flat line list (level-0 line first,
// followed by its subordinates) into a gnode tree via a level-indexed
// stack of currently open ancestors, the in-memory equivalent of the
// teacher's RawRecord.Lines grouping.
func buildTree(store *gnode.Store, lines []*line) (gnode.Ref, error) {
	root := lines[0]
	rootRef := store.NewRecordRoot(root.tag, root.value, root.xref)

	stack := []gnode.Ref{rootRef}
	for _, l := range lines[1:] {
		if l.level < 1 || l.level > len(stack) {
			return gnode.Nil, fmt.Errorf("line %d: unexpected level %d after level %d", l.lineNumber, l.level, len(stack)-1)
		}
		stack = stack[:l.level]
		parent := stack[l.level-1]
		node := store.NewNode(l.tag, l.value)
		parent.AppendChild(node)
		stack = append(stack, node)
	}
	return rootRef, nil
}
