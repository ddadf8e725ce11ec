package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cacack/gedcom-engine/database"
	"github.com/cacack/gedcom-engine/partition"
	"github.com/cacack/gedcom-engine/sequence"
	"github.com/cacack/gedcom-engine/validate"
)

// Issue is one validate.Issue in serializable form.
type Issue struct {
	Kind    string `yaml:"kind"`
	Code    string `yaml:"code"`
	Segment string `yaml:"segment,omitempty"`
	Line    int    `yaml:"line,omitempty"`
	XRef    string `yaml:"xref"`
	Message string `yaml:"message"`
}

// ValidationReport is the YAML document gedcomctl's validate command
// writes: summary stats plus every accumulated issue.
type ValidationReport struct {
	PersonsChecked  int            `yaml:"personsChecked"`
	FamiliesChecked int            `yaml:"familiesChecked"`
	IssueCount      int            `yaml:"issueCount"`
	ErrorsByKind    map[string]int `yaml:"errorsByKind,omitempty"`
	Issues          []Issue        `yaml:"issues,omitempty"`
}

// Validation builds a ValidationReport from a validate.Run result.
func Validation(log *validate.Log, stats validate.Stats) ValidationReport {
	r := ValidationReport{
		PersonsChecked:  stats.PersonsChecked,
		FamiliesChecked: stats.FamiliesChecked,
		IssueCount:      log.Len(),
	}
	if len(stats.ErrorsByKind) > 0 {
		r.ErrorsByKind = make(map[string]int, len(stats.ErrorsByKind))
		for kind, n := range stats.ErrorsByKind {
			r.ErrorsByKind[kind.String()] = n
		}
	}
	for _, issue := range log.Issues() {
		r.Issues = append(r.Issues, Issue{
			Kind:    issue.Kind.String(),
			Code:    issue.Code,
			Segment: issue.Segment,
			Line:    issue.Line,
			XRef:    issue.XRef,
			Message: issue.Message,
		})
	}
	return r
}

// Component is one connected component: its persons and, for each, its
// reachable ancestor/descendant counts.
type Component struct {
	Size               int          `yaml:"size"`
	Persons            []PersonInfo `yaml:"persons"`
	MostConnected      string       `yaml:"mostConnected,omitempty"`
	MostConnectedScore int          `yaml:"mostConnectedScore,omitempty"`
}

// PersonInfo is one person's record key and connectivity counts.
type PersonInfo struct {
	XRef           string `yaml:"xref"`
	NumAncestors   int    `yaml:"numAncestors"`
	NumDescendents int    `yaml:"numDescendents"`
}

// PartitionReport is the YAML document gedcomctl's partition command
// writes: one Component per connected component, in discovery order.
type PartitionReport struct {
	ComponentCount int         `yaml:"componentCount"`
	Components     []Component `yaml:"components"`
}

// Partition builds a PartitionReport by running partition.Connections over
// every component Partition found.
func Partition(db *database.Database, components []*sequence.Sequence) PartitionReport {
	r := PartitionReport{ComponentCount: len(components)}
	for _, comp := range components {
		counts := partition.Connections(db, comp)
		c := Component{Size: comp.Len()}
		for _, key := range comp.Keys() {
			cnt := counts[key]
			c.Persons = append(c.Persons, PersonInfo{
				XRef:           key,
				NumAncestors:   cnt.NumAncestors,
				NumDescendents: cnt.NumDescendents,
			})
		}
		if key, score := partition.MostConnected(counts); key != "" {
			c.MostConnected = key
			c.MostConnectedScore = score
		}
		r.Components = append(r.Components, c)
	}
	return r
}

// WriteYAML marshals v as YAML to w.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(v)
}
