package planner

import (
	"testing"
	"time"

	"tripplanner/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTrip(start, end time.Time) *model.Trip {
	return &model.Trip{
		ID:        "trip-1",
		Title:     "Spring Retreat",
		StartDate: start,
		EndDate:   end,
		GoalTags:  []string{"Team Building"},
	}
}

func testActivity(id string, minutes int) model.Activity {
	return model.Activity{
		ID:              id,
		Title:           "Activity " + id,
		Description:     "описание " + id,
		DurationMinutes: minutes,
	}
}

func TestGenerateItinerary(t *testing.T) {
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	t.Run("single day produces opener, activities and closer", func(t *testing.T) {
		pool := []model.Activity{testActivity("a", 60), testActivity("b", 90)}
		blocks, err := GenerateItinerary(testTrip(day, day), pool)
		require.NoError(t, err)
		require.Len(t, blocks, 4)

		opener := blocks[0]
		assert.Equal(t, "Morning Energizer", opener.Title)
		assert.Equal(t, time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC), opener.StartTime)
		assert.Equal(t, 30*time.Minute, opener.Duration())
		assert.Nil(t, opener.ActivityID)

		first := blocks[1]
		require.NotNil(t, first.ActivityID)
		assert.Equal(t, "a", *first.ActivityID)
		assert.Equal(t, opener.EndTime, first.StartTime)
		assert.Equal(t, 60*time.Minute, first.Duration())

		second := blocks[2]
		assert.Equal(t, first.EndTime.Add(15*time.Minute), second.StartTime)
		assert.Equal(t, 90*time.Minute, second.Duration())

		closer := blocks[3]
		assert.Equal(t, "Reflection & Dinner", closer.Title)
		assert.Equal(t, second.EndTime.Add(15*time.Minute), closer.StartTime)
		assert.Equal(t, 120*time.Minute, closer.Duration())
		assert.Nil(t, closer.ActivityID)

		for i, block := range blocks {
			assert.Equal(t, i, block.BlockOrder)
		}
	})

	t.Run("three day trip starts each day at nine", func(t *testing.T) {
		end := day.AddDate(0, 0, 2)
		pool := make([]model.Activity, 0, 9)
		for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
			pool = append(pool, testActivity(id, 60))
		}
		blocks, err := GenerateItinerary(testTrip(day, end), pool)
		require.NoError(t, err)
		// 3 дня по: открытие + 3 активности + закрытие
		require.Len(t, blocks, 15)

		openers := 0
		for _, block := range blocks {
			if block.Title == "Morning Energizer" {
				wantStart := time.Date(2026, 4, 10+openers, 9, 0, 0, 0, time.UTC)
				assert.Equal(t, wantStart, block.StartTime)
				openers++
			}
		}
		assert.Equal(t, 3, openers)
	})

	t.Run("short pool leaves later days without activities", func(t *testing.T) {
		end := day.AddDate(0, 0, 1)
		pool := []model.Activity{testActivity("a", 60)}
		blocks, err := GenerateItinerary(testTrip(day, end), pool)
		require.NoError(t, err)
		// день 1: открытие + активность + закрытие, день 2: открытие + закрытие
		require.Len(t, blocks, 5)
		assert.Equal(t, "Morning Energizer", blocks[3].Title)
		assert.Equal(t, "Reflection & Dinner", blocks[4].Title)
		assert.Equal(t, blocks[3].EndTime, blocks[4].StartTime)
	})

	t.Run("spring forward keeps every day group", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		// 8 марта 2026 - переход на летнее время, в сутках 23 часа
		start := time.Date(2026, 3, 7, 0, 0, 0, 0, loc)
		end := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)

		blocks, err := GenerateItinerary(testTrip(start, end), nil)
		require.NoError(t, err)

		openers := []model.ItineraryBlock{}
		for _, block := range blocks {
			if block.Title == "Morning Energizer" {
				openers = append(openers, block)
			}
		}
		require.Len(t, openers, 3)
		for i, opener := range openers {
			want := time.Date(2026, 3, 7+i, 9, 0, 0, 0, loc)
			assert.True(t, want.Equal(opener.StartTime), "день %d: %v", i, opener.StartTime)
		}
	})

	t.Run("end before start fails validation", func(t *testing.T) {
		_, err := GenerateItinerary(testTrip(day, day.AddDate(0, 0, -1)), nil)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("blocks are chronological within a day", func(t *testing.T) {
		pool := []model.Activity{testActivity("a", 45), testActivity("b", 30), testActivity("c", 120)}
		blocks, err := GenerateItinerary(testTrip(day, day), pool)
		require.NoError(t, err)
		for i := 1; i < len(blocks); i++ {
			assert.False(t, blocks[i].StartTime.Before(blocks[i-1].StartTime),
				"блок %d начинается раньше предыдущего", i)
		}
	})
}

func TestDayCount(t *testing.T) {
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DayCount(day, day))
	assert.Equal(t, 3, DayCount(day, day.AddDate(0, 0, 2)))
	// часы внутри суток не влияют на число дней
	assert.Equal(t, 2, DayCount(day.Add(23*time.Hour), day.AddDate(0, 0, 1)))

	// переход на летнее время: диапазон короче 72 часов, но дней всё равно три
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, 3, DayCount(
		time.Date(2026, 3, 7, 0, 0, 0, 0, loc),
		time.Date(2026, 3, 9, 0, 0, 0, 0, loc)))
}

func TestPoolLimit(t *testing.T) {
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	limit, err := PoolLimit(testTrip(day, day.AddDate(0, 0, 2)))
	require.NoError(t, err)
	assert.Equal(t, 3*ActivitiesPerDay, limit)

	limit, err = PoolLimit(testTrip(day, day))
	require.NoError(t, err)
	assert.Equal(t, ActivitiesPerDay, limit)

	// перепутанные даты дают ошибку валидации до обращения к каталогу
	_, err = PoolLimit(testTrip(day, day.AddDate(0, 0, -1)))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestSeedChecklist(t *testing.T) {
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	pool := []model.Activity{testActivity("a", 60), testActivity("b", 90)}
	blocks, err := GenerateItinerary(testTrip(day, day), pool)
	require.NoError(t, err)

	items := SeedChecklist("trip-1", blocks)
	// шесть фиксированных задач + по одной на каждый блок с активностью
	require.Len(t, items, 8)

	for i, item := range items {
		assert.Equal(t, i, item.ItemOrder)
		assert.Equal(t, "trip-1", item.TripID)
	}
	for _, item := range items[:6] {
		assert.Nil(t, item.DueDate)
		assert.NotEmpty(t, item.AssigneeRole)
	}
	assert.Equal(t, "Book transportation", items[1].Title)
	assert.Equal(t, "Logistics Lead", items[1].AssigneeRole)

	prep := items[6]
	require.NotNil(t, prep.DueDate)
	assert.Equal(t, blocks[1].StartTime, *prep.DueDate)
	assert.Contains(t, prep.Title, "Prepare materials for")
	assert.Equal(t, "Activity Coordinator", prep.AssigneeRole)
}
