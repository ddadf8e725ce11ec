package partition

import (
	"github.com/cacack/gedcom-engine/database"
	"github.com/cacack/gedcom-engine/gnode"
	"github.com/cacack/gedcom-engine/sequence"
)

// Partition decomposes db's person+family subgraph into connected
// components, returning one Sequence of persons per component in
// seed-discovery order (the order db.Records.RootsOfType(Person) visits
// an as-yet-unvisited root).
func Partition(db *database.Database) []*sequence.Sequence {
	visited := make(map[string]bool)
	var partitions []*sequence.Sequence

	for person := range db.Records.RootsOfType(gnode.Person) {
		key := person.Key()
		if key == "" || visited[key] {
			continue
		}
		partitions = append(partitions, closeComponent(db, person, visited))
	}
	db.Logger.Infow("partition complete", "components", len(partitions))
	return partitions
}

// closeComponent runs the undirected BFS from root (a person), marking
// every reached record key visited, and returns a Sequence of the persons
// found. Families are traversed but never appended to the result.
func closeComponent(db *database.Database, root gnode.Ref, visited map[string]bool) *sequence.Sequence {
	out := sequence.New(db)
	queue := []gnode.Ref{root}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		key := n.Key()
		if key == "" || visited[key] {
			continue
		}
		visited[key] = true

		rt, _ := n.RecordType()
		switch rt {
		case gnode.Person:
			out.Append(key, nil)
			queue = append(queue, neighbors(db, n, "FAMS", "FAMC")...)
		case gnode.Family:
			queue = append(queue, neighbors(db, n, "HUSB", "WIFE", "CHIL")...)
		}
	}
	return out
}

func neighbors(db *database.Database, root gnode.Ref, tags ...string) []gnode.Ref {
	var out []gnode.Ref
	for _, tag := range tags {
		for line := range gnode.ChildrenWithTag(root, tag) {
			if target, ok := db.Records.Lookup(line.Value()); ok {
				out = append(out, target)
			}
		}
	}
	return out
}

// Counts holds a person's reachable-ancestor and reachable-descendant
// totals.
type Counts struct {
	NumAncestors   int
	NumDescendents int
}

// Connections computes Counts for every person in partitionSeq: the size
// of its open ancestorSequence and open descendentSequence.
func Connections(db *database.Database, partitionSeq *sequence.Sequence) map[string]Counts {
	counts := make(map[string]Counts, partitionSeq.Len())
	for _, key := range partitionSeq.Keys() {
		seed := sequence.New(db)
		seed.Append(key, nil)
		ancestors := sequence.AncestorSequence(seed, false)
		descendents := sequence.DescendentSequence(seed, false)
		counts[key] = Counts{
			NumAncestors:   ancestors.Len(),
			NumDescendents: descendents.Len(),
		}
	}
	return counts
}

// MostConnected returns the record key with the highest
// NumAncestors+NumDescendents score in counts, and that score. It returns
// ("", 0) if counts is empty.
func MostConnected(counts map[string]Counts) (key string, score int) {
	first := true
	for k, c := range counts {
		s := c.NumAncestors + c.NumDescendents
		if first || s > score {
			key, score, first = k, s, false
		}
	}
	return key, score
}
