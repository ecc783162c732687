package planner

import (
	"testing"
	"time"

	"tripplanner/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checklistFixture(ids ...string) []model.ChecklistItem {
	items := make([]model.ChecklistItem, 0, len(ids))
	for i, id := range ids {
		items = append(items, model.ChecklistItem{ID: id, TripID: "trip-1", Title: "Item " + id, ItemOrder: i})
	}
	return items
}

// blocksFixture строит цепочку блоков с указанными длительностями в минутах,
// начиная с 09:00, с паузой BufferMinutes между блоками.
func blocksFixture(durations ...int) []model.ItineraryBlock {
	start := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)
	blocks := make([]model.ItineraryBlock, 0, len(durations))
	ids := []string{"A", "B", "C", "D", "E"}
	for i, minutes := range durations {
		end := start.Add(time.Duration(minutes) * time.Minute)
		blocks = append(blocks, model.ItineraryBlock{
			ID: ids[i], TripID: "trip-1", Title: "Block " + ids[i],
			StartTime: start, EndTime: end, BlockOrder: i,
		})
		start = end.Add(BufferMinutes * time.Minute)
	}
	return blocks
}

func TestReorderChecklist(t *testing.T) {
	t.Run("move renumbers sequentially", func(t *testing.T) {
		items := checklistFixture("a", "b", "c", "d")
		reordered, changed := ReorderChecklist(items, "c", "a")
		require.True(t, changed)
		require.Len(t, reordered, 4)

		got := []string{}
		for i, item := range reordered {
			assert.Equal(t, i, item.ItemOrder)
			got = append(got, item.ID)
		}
		assert.Equal(t, []string{"c", "a", "b", "d"}, got)
	})

	t.Run("move down shifts items between", func(t *testing.T) {
		items := checklistFixture("a", "b", "c", "d")
		reordered, changed := ReorderChecklist(items, "a", "c")
		require.True(t, changed)
		got := []string{}
		for _, item := range reordered {
			got = append(got, item.ID)
		}
		assert.Equal(t, []string{"b", "c", "a", "d"}, got)
	})

	t.Run("missing ids are a no-op", func(t *testing.T) {
		items := checklistFixture("a", "b")
		reordered, changed := ReorderChecklist(items, "x", "a")
		assert.False(t, changed)
		assert.Equal(t, items, reordered)

		reordered, changed = ReorderChecklist(items, "a", "x")
		assert.False(t, changed)
		assert.Equal(t, items, reordered)
	})

	t.Run("equal ids are a no-op", func(t *testing.T) {
		items := checklistFixture("a", "b")
		_, changed := ReorderChecklist(items, "a", "a")
		assert.False(t, changed)
	})

	t.Run("preserves all elements", func(t *testing.T) {
		items := checklistFixture("a", "b", "c", "d", "e")
		reordered, changed := ReorderChecklist(items, "b", "e")
		require.True(t, changed)
		seen := map[string]bool{}
		for _, item := range reordered {
			seen[item.ID] = true
		}
		assert.Len(t, seen, 5)
	})
}

func TestReorderBlocks(t *testing.T) {
	t.Run("moving last block to front anchors it and rechains", func(t *testing.T) {
		blocks := blocksFixture(30, 60, 45)
		origStart := map[string]time.Time{}
		for _, block := range blocks {
			origStart[block.ID] = block.StartTime
		}

		reordered, changed := ReorderBlocks(blocks, "C", "A")
		require.True(t, changed)
		require.Len(t, reordered, 3)

		got := []string{}
		for i, block := range reordered {
			assert.Equal(t, i, block.BlockOrder)
			got = append(got, block.ID)
		}
		require.Equal(t, []string{"C", "A", "B"}, got)

		// Якорь: C сохраняет свое исходное время
		assert.Equal(t, origStart["C"], reordered[0].StartTime)
		assert.Equal(t, 45*time.Minute, reordered[0].Duration())

		// A начинается через 15 минут после конца C, B - после A
		assert.Equal(t, reordered[0].EndTime.Add(15*time.Minute), reordered[1].StartTime)
		assert.Equal(t, 30*time.Minute, reordered[1].Duration())
		assert.Equal(t, reordered[1].EndTime.Add(15*time.Minute), reordered[2].StartTime)
		assert.Equal(t, 60*time.Minute, reordered[2].Duration())
	})

	t.Run("durations survive any move", func(t *testing.T) {
		blocks := blocksFixture(30, 60, 45, 90)
		want := map[string]time.Duration{}
		for _, block := range blocks {
			want[block.ID] = block.Duration()
		}
		reordered, changed := ReorderBlocks(blocks, "B", "D")
		require.True(t, changed)
		for _, block := range reordered {
			assert.Equal(t, want[block.ID], block.Duration(), "блок %s", block.ID)
		}
	})

	t.Run("first block keeps its time when not moved", func(t *testing.T) {
		blocks := blocksFixture(30, 60, 45)
		first := blocks[0]
		reordered, changed := ReorderBlocks(blocks, "C", "B")
		require.True(t, changed)
		assert.Equal(t, first.StartTime, reordered[0].StartTime)
		assert.Equal(t, first.EndTime, reordered[0].EndTime)
	})

	t.Run("missing or equal ids are a no-op", func(t *testing.T) {
		blocks := blocksFixture(30, 60)
		reordered, changed := ReorderBlocks(blocks, "A", "Z")
		assert.False(t, changed)
		assert.Equal(t, blocks, reordered)

		_, changed = ReorderBlocks(blocks, "B", "B")
		assert.False(t, changed)
	})

	t.Run("chain stays contiguous", func(t *testing.T) {
		blocks := blocksFixture(30, 60, 45, 90, 20)
		reordered, changed := ReorderBlocks(blocks, "E", "B")
		require.True(t, changed)
		for i := 1; i < len(reordered); i++ {
			assert.Equal(t,
				reordered[i-1].EndTime.Add(BufferMinutes*time.Minute),
				reordered[i].StartTime, "позиция %d", i)
		}
	})
}
