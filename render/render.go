package render

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/cacack/gedcom-engine/gnode"
)

// Write writes root and its full subtree to w as GEDCOM text, using
// DefaultOptions.
func Write(w io.Writer, root gnode.Ref) error {
	return WriteWithOptions(w, root, DefaultOptions())
}

// WriteWithOptions writes root and its full subtree to w as GEDCOM text.
// root is expected to be a record root (level 0); its children are
// written at level 1 and so on, walked in document order via
// gnode.Children/gnode.Traverse's same parent-first discipline.
func WriteWithOptions(w io.Writer, root gnode.Ref, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if root.IsNil() {
		return fmt.Errorf("render: cannot write a nil node")
	}

	bw := bufio.NewWriter(w)
	if err := writeSubtree(bw, root, 0, opts); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteAll writes a sequence of record roots one after another, the form
// a full document (HEAD, records, TRLR) takes once reassembled from a
// database's root set.
func WriteAll(w io.Writer, roots iter.Seq[gnode.Ref], opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	bw := bufio.NewWriter(w)
	for root := range roots {
		if err := writeSubtree(bw, root, 0, opts); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeSubtree(bw *bufio.Writer, n gnode.Ref, level int, opts *Options) error {
	xref := ""
	if level == 0 {
		xref = n.Key()
	}
	for _, rl := range splitValue(level, xref, n.Tag(), n.Value(), opts) {
		if err := writeRawLine(bw, rl, opts); err != nil {
			return err
		}
	}
	for c := range gnode.Children(n) {
		if err := writeSubtree(bw, c, level+1, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeRawLine(bw *bufio.Writer, rl rawLine, opts *Options) error {
	var err error
	switch {
	case rl.xref != "" && rl.value != "":
		_, err = fmt.Fprintf(bw, "%d %s %s %s%s", rl.level, rl.xref, rl.tag, rl.value, opts.lineEnding())
	case rl.xref != "":
		_, err = fmt.Fprintf(bw, "%d %s %s%s", rl.level, rl.xref, rl.tag, opts.lineEnding())
	case rl.value != "":
		_, err = fmt.Fprintf(bw, "%d %s %s%s", rl.level, rl.tag, rl.value, opts.lineEnding())
	default:
		_, err = fmt.Fprintf(bw, "%d %s%s", rl.level, rl.tag, opts.lineEnding())
	}
	return err
}
