package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService(t *testing.T) {
	t.Run("selection travels with the token", func(t *testing.T) {
		s := NewSessionService()
		token := s.StartSession()
		require.NotEmpty(t, token)

		require.True(t, s.SetDestination(token, "da-lat"))
		require.True(t, s.SetAttractions(token, []string{"dl-crazy-house", "dl-langbiang"}))

		selection, ok := s.Selection(token)
		require.True(t, ok)
		assert.Equal(t, "da-lat", selection.DestinationID)
		assert.Equal(t, []string{"dl-crazy-house", "dl-langbiang"}, selection.AttractionIDs)
	})

	t.Run("changing destination resets attractions", func(t *testing.T) {
		s := NewSessionService()
		token := s.StartSession()
		s.SetDestination(token, "da-lat")
		s.SetAttractions(token, []string{"dl-crazy-house"})

		s.SetDestination(token, "vung-tau")
		selection, ok := s.Selection(token)
		require.True(t, ok)
		assert.Equal(t, "vung-tau", selection.DestinationID)
		assert.Empty(t, selection.AttractionIDs)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		s := NewSessionService()
		assert.False(t, s.SetDestination("nope", "da-lat"))
		assert.False(t, s.SetAttractions("nope", nil))
		_, ok := s.Selection("nope")
		assert.False(t, ok)
	})

	t.Run("ended session disappears", func(t *testing.T) {
		s := NewSessionService()
		token := s.StartSession()
		s.EndSession(token)
		_, ok := s.Selection(token)
		assert.False(t, ok)
	})
}
