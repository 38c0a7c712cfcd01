package bracket

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree(t *testing.T) {
	type testCase struct {
		size     int
		expected func(bt *Tree, t *testing.T)
	}

	validateNodes := func(t *testing.T, slots, expected, got int) {
		if got != expected {
			t.Fatalf("expected %d nodes from %d slots but got %d", expected, slots, got)
		}
	}

	validateRoot := func(t *testing.T, bt *Tree, expected int) {
		if bt.Root.Match.ID != expected {
			t.Fatalf("expected root to be match %d but got %d", expected, bt.Root.Match.ID)
		}
	}

	tests := []testCase{
		{
			size: 2,
			expected: func(bt *Tree, t *testing.T) {
				validateNodes(t, 2, 3, bt.Size())
				validateRoot(t, bt, 3)
			},
		},
		{
			size: 8,
			expected: func(bt *Tree, t *testing.T) {
				validateNodes(t, 8, 15, bt.Size())
				validateRoot(t, bt, 15)
				gf := bt.Root.Left
				require.NotNil(t, gf)
				assert.Equal(t, 14, gf.Match.ID)
				assert.Equal(t, 7, gf.Left.Match.ID)
				assert.Equal(t, 13, gf.Right.Match.ID)
			},
		},
		{
			size: 32,
			expected: func(bt *Tree, t *testing.T) {
				validateNodes(t, 32, 63, bt.Size())
				validateRoot(t, bt, 63)
			},
		},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Tree from %d slots", tc.size), func(t *testing.T) {
			topo, err := BuildTopology(tc.size)
			require.NoError(t, err)
			tc.expected(topo.Tree(), t)
		})
	}
}

func TestTreeSearch(t *testing.T) {
	topo, err := BuildTopology(8)
	require.NoError(t, err)
	bt := topo.Tree()

	n, err := bt.Search(5)
	require.NoError(t, err)
	assert.Equal(t, Top, n.Match.Segment)
	assert.Equal(t, 2, n.Match.Round)
	require.NotNil(t, n.Left)
	require.NotNil(t, n.Right)
	assert.Equal(t, 1, n.Left.Match.ID)
	assert.Equal(t, 2, n.Right.Match.ID)

	_, err = bt.Search(99)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestTreePrint(t *testing.T) {
	topo, err := BuildTopology(4)
	require.NoError(t, err)

	var buf bytes.Buffer
	topo.Tree().Print(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "M:7 champion r2 m1", lines[0])
	assert.Equal(t, "  L:6 champion r1 m1", lines[1])
	assert.Equal(t, "    L:3 top r2 m1", lines[2])
}

func TestTreePrintPayload(t *testing.T) {
	topo, err := BuildTopology(2)
	require.NoError(t, err)
	bt := topo.Tree()

	n, err := bt.Search(1)
	require.NoError(t, err)
	n.Payload = "alice vs bob"

	var buf bytes.Buffer
	bt.Print(&buf)
	assert.Equal(t, "M:3 champion r2 m1\n  L:2 champion r1 m1\n    L:1 top r1 m1 alice vs bob\n", buf.String())
}
