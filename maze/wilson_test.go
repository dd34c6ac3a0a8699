package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateTestMaze(t *testing.T, rows, cols int, seed int64) *Maze {
	t.Helper()
	m, err := New(rows, cols)
	require.NoError(t, err)
	require.NoError(t, Generate(m, rand.New(rand.NewSource(seed)), nil))
	return m
}

// reachableCells walks the open-passage graph from pos and returns the number
// of cells reached.
func reachableCells(t *testing.T, m *Maze, pos CellPosition) int {
	t.Helper()
	seen := map[CellPosition]struct{}{pos: {}}
	queue := []CellPosition{pos}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cell, err := m.CellAt(cur)
		require.NoError(t, err)
		for d := North; d <= West; d++ {
			if !cell.HasExit(d) {
				continue
			}
			next := cur.Step(d)
			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
	return len(seen)
}

func TestGenerateSpanningTree(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 10, 20} {
		m := generateTestMaze(t, n, n, 42)

		// A spanning tree over n*n cells has exactly n*n-1 edges; together
		// with full connectivity that also rules out cycles.
		assert.Equal(t, n*n-1, m.OpenWallCount(), "open walls for n=%d", n)
		assert.Equal(t, n*n, reachableCells(t, m, CellPosition{}), "connectivity for n=%d", n)
	}
}

func TestGenerateEntranceAndExit(t *testing.T) {
	onBorder := func(m *Maze, pos CellPosition) bool {
		return pos.Row == 0 || pos.Row == m.Rows()-1 || pos.Col == 0 || pos.Col == m.Cols()-1
	}

	for seed := int64(0); seed < 25; seed++ {
		m := generateTestMaze(t, 6, 6, seed)

		entrance, ok := m.Entrance()
		require.True(t, ok)
		exit, ok := m.Exit()
		require.True(t, ok)

		assert.True(t, onBorder(m, entrance), "entrance %s on border (seed %d)", entrance, seed)
		assert.True(t, onBorder(m, exit), "exit %s on border (seed %d)", exit, seed)
		assert.NotEqual(t, entrance, exit, "distinct entrance and exit (seed %d)", seed)
	}

	t.Run("corner entrance forces opposite corner exit", func(t *testing.T) {
		for seed := int64(0); seed < 50; seed++ {
			m := generateTestMaze(t, 4, 4, seed)
			entrance, _ := m.Entrance()
			exit, _ := m.Exit()

			corners := map[CellPosition]CellPosition{
				{Row: 0, Col: 0}: {Row: 3, Col: 3},
				{Row: 0, Col: 3}: {Row: 3, Col: 0},
				{Row: 3, Col: 0}: {Row: 0, Col: 3},
				{Row: 3, Col: 3}: {Row: 0, Col: 0},
			}
			if opposite, isCorner := corners[entrance]; isCorner {
				assert.Equal(t, opposite, exit, "seed %d", seed)
			}
		}
	})

	t.Run("degenerate 1x1 maze may coincide", func(t *testing.T) {
		m := generateTestMaze(t, 1, 1, 7)
		entrance, ok := m.Entrance()
		require.True(t, ok)
		exit, ok := m.Exit()
		require.True(t, ok)
		assert.Equal(t, CellPosition{}, entrance)
		assert.Equal(t, CellPosition{}, exit)
	})
}

func TestGenerateDeterminism(t *testing.T) {
	for _, seed := range []int64{1, 99, 1234567} {
		first := generateTestMaze(t, 8, 8, seed)
		second := generateTestMaze(t, 8, 8, seed)

		assert.Equal(t, Encode(first), Encode(second), "seed %d", seed)

		firstEntrance, _ := first.Entrance()
		secondEntrance, _ := second.Entrance()
		assert.Equal(t, firstEntrance, secondEntrance)

		firstExit, _ := first.Exit()
		secondExit, _ := second.Exit()
		assert.Equal(t, firstExit, secondExit)
	}

	t.Run("different seeds differ", func(t *testing.T) {
		// Not guaranteed in theory, vanishingly unlikely to collide on 8x8.
		first := generateTestMaze(t, 8, 8, 1)
		second := generateTestMaze(t, 8, 8, 2)
		assert.NotEqual(t, Encode(first), Encode(second))
	})
}

func TestGenerateTwoByTwo(t *testing.T) {
	// 4 cells and 4 possible walls; a tree opens exactly 3 of them.
	for seed := int64(0); seed < 10; seed++ {
		m := generateTestMaze(t, 2, 2, seed)
		assert.Equal(t, 3, m.OpenWallCount(), "seed %d", seed)
		assert.Equal(t, 4, reachableCells(t, m, CellPosition{}), "seed %d", seed)

		entrance, _ := m.Entrance()
		exit, _ := m.Exit()
		assert.NotEqual(t, entrance, exit, "seed %d", seed)
	}
}
