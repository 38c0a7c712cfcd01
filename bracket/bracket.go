package bracket

import (
	"fmt"
	"io"
)

// Tree is the winner-path view of a topology: every node's children are the
// matches whose winners play in it. The root is the reset match.
type Tree struct {
	InsertionOrder []int
	Root           *Node
	index          map[int]*Node
}

func NewTree(node *Node) *Tree {
	return &Tree{
		InsertionOrder: []int{},
		Root:           node,
		index:          map[int]*Node{},
	}
}

// Tree builds the winner-path tree breadth first from the reset match.
func (t *Topology) Tree() *Tree {
	feeders := make(map[int][]int, len(t.matches))
	for _, m := range t.matches {
		if m.WinnerTo.Kind == Advance {
			feeders[m.WinnerTo.Match] = append(feeders[m.WinnerTo.Match], m.ID)
		}
	}

	last := t.matches[len(t.matches)-1]
	root := NewNode(*last, nil)
	tree := NewTree(root)
	tree.add(root)

	queue := []*Node{root}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		from := feeders[curr.Match.ID]
		if len(from) > 0 {
			curr.Left = NewNode(*t.matches[from[0]-1], nil)
			tree.add(curr.Left)
			queue = append(queue, curr.Left)
		}
		if len(from) > 1 {
			curr.Right = NewNode(*t.matches[from[1]-1], nil)
			tree.add(curr.Right)
			queue = append(queue, curr.Right)
		}
	}
	return tree
}

func (bt *Tree) add(n *Node) {
	bt.InsertionOrder = append(bt.InsertionOrder, n.Match.ID)
	bt.index[n.Match.ID] = n
}

// Search finds the node of a match ID.
func (bt *Tree) Search(id int) (*Node, error) {
	n, ok := bt.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrMatchNotFound, id)
	}
	return n, nil
}

// visualization for debugging purposes
func (bt *Tree) Print(w io.Writer) {
	if bt.Root == nil {
		return
	}
	bt.Root.Print(w, 0, 'M')
}

func (bt Tree) Size() int {
	return len(bt.InsertionOrder)
}
