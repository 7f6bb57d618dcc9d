package tree

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes an ASCII representation of the tree to w, turned
// sideways with the right subtree above each node. Each node is
// annotated with the height and balance factor of its subtree
func (t *Tree) Print(w io.Writer) error {
	p := printer{w: w}
	p.print(snapshot(t.root), "", rootBranch)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(s *Snapshot, prefix string, br branch) {
	if s == nil || p.err != nil {
		return
	}

	if s.Right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		p.print(s.Right, prefix+pad, rightBranch)
	}

	var edge string
	switch br {
	case rootBranch:
		edge = "|------+ "
	case leftBranch:
		edge = "\\------+ "
	case rightBranch:
		edge = "/------+ "
	}

	if _, err := fmt.Fprintf(p.w, "%s%s%d (h=%d b=%+d)\n", prefix, edge, s.Value, s.Height, s.Balance); err != nil {
		p.err = err
		return
	}

	if s.Left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		p.print(s.Left, prefix+pad, leftBranch)
	}
}
