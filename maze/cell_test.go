package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellClassification(t *testing.T) {
	t.Run("blank cell has no exits", func(t *testing.T) {
		c := newCell(CellPosition{Row: 0, Col: 0})
		assert.Equal(t, 0, c.NumExits())
		assert.False(t, c.IsDeadEnd())
		assert.False(t, c.IsJunction())
		assert.False(t, c.IsEntranceJunction())
	})

	t.Run("one exit is a dead end", func(t *testing.T) {
		c := newCell(CellPosition{Row: 0, Col: 0})
		c.addExit(North)
		assert.True(t, c.IsDeadEnd())
		assert.False(t, c.IsJunction())
		assert.False(t, c.IsEntranceJunction())
	})

	t.Run("two exits is a corridor but an entrance junction", func(t *testing.T) {
		c := newCell(CellPosition{Row: 0, Col: 0})
		c.addExit(North)
		c.addExit(East)
		assert.False(t, c.IsDeadEnd())
		assert.False(t, c.IsJunction())
		assert.True(t, c.IsEntranceJunction())
	})

	t.Run("three exits is a junction", func(t *testing.T) {
		c := newCell(CellPosition{Row: 0, Col: 0})
		c.addExit(North)
		c.addExit(South)
		c.addExit(East)
		assert.True(t, c.IsJunction())
		assert.True(t, c.IsEntranceJunction())
	})

	t.Run("classification never mutates state", func(t *testing.T) {
		c := newCell(CellPosition{Row: 1, Col: 1})
		c.addExit(North)
		c.addExit(South)
		before := c
		_ = c.IsDeadEnd()
		_ = c.IsJunction()
		_ = c.IsEntranceJunction()
		_ = c.OnlyDirMarked(North)
		_ = c.DirMarkedTwice(South)
		_ = c.AllButOneMarkedTwice()
		_ = c.DirFewestMarks()
		assert.Equal(t, before, c)
	})
}

func TestCellExitCountInvariant(t *testing.T) {
	c := newCell(CellPosition{Row: 2, Col: 3})
	dirs := []Direction{West, East, South, North}
	for i, d := range dirs {
		c.addExit(d)
		assert.Equal(t, i+1, c.NumExits())

		passages := 0
		for dd := North; dd <= West; dd++ {
			if c.HasExit(dd) {
				passages++
			}
		}
		assert.Equal(t, c.NumExits(), passages)
	}

	// Re-adding an exit must not inflate the count.
	c.addExit(North)
	assert.Equal(t, numDirections, c.NumExits())
}

func TestCellMarkExit(t *testing.T) {
	c := newCell(CellPosition{Row: 0, Col: 0})
	c.addExit(East)

	require.NoError(t, c.MarkExit(East))
	assert.Equal(t, 1, c.Marks(East))
	require.NoError(t, c.MarkExit(East))
	assert.Equal(t, 2, c.Marks(East))
	assert.True(t, c.DirMarkedTwice(East))

	t.Run("marking a missing passage is a contract error", func(t *testing.T) {
		err := c.MarkExit(North)
		assert.ErrorIs(t, err, ErrNoPassage)
		assert.Equal(t, -1, c.Marks(North))
	})
}

func TestCellMarkQueries(t *testing.T) {
	c := newCell(CellPosition{Row: 0, Col: 0})
	c.addExit(North)
	c.addExit(South)
	c.addExit(East)

	assert.True(t, c.OnlyDirMarked(North), "nothing marked yet")

	require.NoError(t, c.MarkExit(North))
	assert.True(t, c.OnlyDirMarked(North))
	assert.False(t, c.OnlyDirMarked(South))

	require.NoError(t, c.MarkExit(South))
	assert.False(t, c.OnlyDirMarked(North))

	t.Run("all but one marked twice", func(t *testing.T) {
		assert.False(t, c.AllButOneMarkedTwice())
		require.NoError(t, c.MarkExit(North))
		require.NoError(t, c.MarkExit(South))
		// North and South carry two marks each, East none.
		assert.True(t, c.AllButOneMarkedTwice())
	})
}

func TestCellDirFewestMarks(t *testing.T) {
	t.Run("ties break in North South East West order", func(t *testing.T) {
		c := newCell(CellPosition{Row: 0, Col: 0})
		c.addExit(South)
		c.addExit(East)
		c.addExit(West)
		assert.Equal(t, South, c.DirFewestMarks())

		require.NoError(t, c.MarkExit(South))
		assert.Equal(t, East, c.DirFewestMarks())
	})

	t.Run("lowest mark count wins", func(t *testing.T) {
		c := newCell(CellPosition{Row: 0, Col: 0})
		c.addExit(North)
		c.addExit(West)
		require.NoError(t, c.MarkExit(North))
		require.NoError(t, c.MarkExit(North))
		assert.Equal(t, West, c.DirFewestMarks())
	})
}

func TestCellOnlyOtherExit(t *testing.T) {
	t.Run("corridor returns the other passage", func(t *testing.T) {
		c := newCell(CellPosition{Row: 0, Col: 0})
		c.addExit(North)
		c.addExit(East)

		other, err := c.OnlyOtherExit(North)
		require.NoError(t, err)
		assert.Equal(t, East, other)

		other, err = c.OnlyOtherExit(East)
		require.NoError(t, err)
		assert.Equal(t, North, other)
	})

	t.Run("not a corridor is a contract error", func(t *testing.T) {
		c := newCell(CellPosition{Row: 0, Col: 0})
		c.addExit(North)
		_, err := c.OnlyOtherExit(North)
		assert.ErrorIs(t, err, ErrNotCorridor)

		c.addExit(South)
		c.addExit(East)
		_, err = c.OnlyOtherExit(North)
		assert.ErrorIs(t, err, ErrNotCorridor)
	})

	t.Run("entry must be one of the two passages", func(t *testing.T) {
		c := newCell(CellPosition{Row: 0, Col: 0})
		c.addExit(North)
		c.addExit(East)
		_, err := c.OnlyOtherExit(West)
		assert.ErrorIs(t, err, ErrNoPassage)
	})
}
