package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validBrief() *Brief {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	return &Brief{
		Title:            "Spring Team Retreat",
		Description:      "Quarterly offsite",
		StartDate:        start,
		EndDate:          start.AddDate(0, 0, 2),
		ParticipantCount: 10,
		BudgetLevel:      "medium",
		GoalTags:         []string{"Team Building", "Adventure"},
	}
}

func TestValidateBrief(t *testing.T) {
	t.Run("valid brief passes", func(t *testing.T) {
		assert.NoError(t, ValidateBrief(validBrief()))
	})

	cases := []struct {
		name    string
		mutate  func(*Brief)
		wantErr error
	}{
		{"empty title", func(b *Brief) { b.Title = "   " }, ErrTitleRequired},
		{"title too long", func(b *Brief) { b.Title = strings.Repeat("x", 201) }, ErrTitleTooLong},
		{"description too long", func(b *Brief) { b.Description = strings.Repeat("x", 2001) }, ErrDescTooLong},
		{"one participant", func(b *Brief) { b.ParticipantCount = 1 }, ErrBadParticipants},
		{"too many participants", func(b *Brief) { b.ParticipantCount = 1001 }, ErrBadParticipants},
		{"unknown budget level", func(b *Brief) { b.BudgetLevel = "free" }, ErrBadBudgetLevel},
		{"too many goals", func(b *Brief) { b.GoalTags = make([]string, 11) }, ErrTooManyGoals},
		{"end before start", func(b *Brief) { b.EndDate = b.StartDate.AddDate(0, 0, -1) }, ErrEndBeforeStart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			brief := validBrief()
			tc.mutate(brief)
			assert.ErrorIs(t, ValidateBrief(brief), tc.wantErr)
		})
	}

	t.Run("single day trip is allowed", func(t *testing.T) {
		brief := validBrief()
		brief.EndDate = brief.StartDate
		assert.NoError(t, ValidateBrief(brief))
	})
}
