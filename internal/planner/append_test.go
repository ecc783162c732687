package planner

import (
	"testing"
	"time"

	"tripplanner/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendActivity(t *testing.T) {
	now := time.Date(2026, 4, 10, 14, 30, 0, 0, time.UTC)

	t.Run("empty itinerary schedules for tomorrow", func(t *testing.T) {
		activity := testActivity("a", 90)
		block, items := AppendActivity(&activity, "trip-1", nil, now)

		assert.Equal(t, now.Add(24*time.Hour), block.StartTime)
		assert.Equal(t, block.StartTime.Add(90*time.Minute), block.EndTime)
		assert.Equal(t, 0, block.BlockOrder)
		require.NotNil(t, block.ActivityID)
		assert.Equal(t, "a", *block.ActivityID)
		require.Len(t, items, 1)
	})

	t.Run("appends after last block with buffer", func(t *testing.T) {
		activity := testActivity("a", 60)
		last := &model.ItineraryBlock{
			ID: "B", TripID: "trip-1", BlockOrder: 4,
			StartTime: now, EndTime: now.Add(45 * time.Minute),
		}
		block, _ := AppendActivity(&activity, "trip-1", last, now)

		assert.Equal(t, last.EndTime.Add(15*time.Minute), block.StartTime)
		assert.Equal(t, block.StartTime.Add(60*time.Minute), block.EndTime)
		assert.Equal(t, 5, block.BlockOrder)
	})

	t.Run("materials list becomes one prep item", func(t *testing.T) {
		activity := testActivity("a", 60)
		activity.Title = "Climbing"
		activity.Props = model.Props{"materials": []any{"rope", "helmet"}}

		block, items := AppendActivity(&activity, "trip-1", nil, now)
		require.Len(t, items, 1)
		assert.Contains(t, items[0].Title, "rope, helmet")
		assert.Contains(t, items[0].Title, "Climbing")
		assert.NotContains(t, items[0].Title, "safety")
		assert.Equal(t, "Activity Coordinator", items[0].AssigneeRole)
		assert.Equal(t, 1000, items[0].ItemOrder)
		require.NotNil(t, items[0].DueDate)
		assert.Equal(t, block.StartTime, *items[0].DueDate)
	})

	t.Run("equipment key works like materials", func(t *testing.T) {
		activity := testActivity("a", 60)
		activity.Props = model.Props{"equipment": []any{"kayaks", "life vests"}}
		_, items := AppendActivity(&activity, "trip-1", nil, now)
		require.Len(t, items, 1)
		assert.Contains(t, items[0].Title, "kayaks, life vests")
	})

	t.Run("safety note becomes a review item", func(t *testing.T) {
		activity := testActivity("a", 60)
		activity.Props = model.Props{"risk_notes": "swimmers only"}
		_, items := AppendActivity(&activity, "trip-1", nil, now)
		require.Len(t, items, 1)
		assert.Contains(t, items[0].Title, "Review safety guidelines")
		assert.Contains(t, items[0].Title, "swimmers only")
		assert.Equal(t, "Safety Officer", items[0].AssigneeRole)
	})

	t.Run("materials and safety give two items in order", func(t *testing.T) {
		activity := testActivity("a", 60)
		activity.Props = model.Props{
			"materials": "buckets",
			"safety":    "tide schedule",
		}
		_, items := AppendActivity(&activity, "trip-1", nil, now)
		require.Len(t, items, 2)
		assert.Equal(t, 1000, items[0].ItemOrder)
		assert.Equal(t, 1001, items[1].ItemOrder)
	})

	t.Run("no props give a generic prep item", func(t *testing.T) {
		activity := testActivity("a", 60)
		_, items := AppendActivity(&activity, "trip-1", nil, now)
		require.Len(t, items, 1)
		assert.Contains(t, items[0].Title, "Prepare for activity")
		assert.Equal(t, 1000, items[0].ItemOrder)
	})

	t.Run("description fallback for notes", func(t *testing.T) {
		activity := testActivity("a", 60)
		activity.Description = ""
		block, _ := AppendActivity(&activity, "trip-1", nil, now)
		assert.Equal(t, "Added from Activity Library", block.Notes)
	})
}
