package bracket

import (
	"fmt"
	"io"
)

// Node is one match in a Tree. Payload is free for callers to attach their
// own data (entrants, scores) to.
type Node struct {
	Left    *Node
	Right   *Node
	Match   Match
	Payload any
}

func NewNode(m Match, payload any) *Node {
	return &Node{
		Match:   m,
		Payload: payload,
	}
}

func (n *Node) Print(w io.Writer, ns int, ch rune) {
	if n == nil {
		return
	}

	for i := 0; i < ns; i++ {
		fmt.Fprint(w, " ")
	}
	fmt.Fprintf(w, "%c:%d %s r%d m%d", ch, n.Match.ID, n.Match.Segment, n.Match.Round, n.Match.RoundMatch)
	if n.Payload != nil {
		fmt.Fprintf(w, " %v", n.Payload)
	}
	fmt.Fprintln(w)
	n.Left.Print(w, ns+2, 'L')
	n.Right.Print(w, ns+2, 'R')
}
