package club

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/clubrank/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberFinder_Find(t *testing.T) {
	store := NewMock()
	store.ListMembersFunc = func(clubID string) ([]ranking.Member, error) {
		return []ranking.Member{
			{ID: "1", Name: "Anna Jensen", Status: ranking.MemberActive},
			{ID: "2", Name: "Hanna Jensen", Status: ranking.MemberActive},
			{ID: "3", Name: "Bo Nielsen", Status: ranking.MemberActive},
			{ID: "4", Name: "Guest", Status: ranking.MemberSystem},
		}, nil
	}
	finder := NewMemberFinder(store)

	t.Run("exact match ignores case and punctuation", func(t *testing.T) {
		matches, err := finder.Find(context.Background(), "club1", "  anna   JENSEN! ")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "1", matches[0].Member.ID)
		assert.Equal(t, 1.0, matches[0].Confidence)
	})

	t.Run("close names are suggested best first", func(t *testing.T) {
		matches, err := finder.Find(context.Background(), "club1", "Ana Jensen")
		require.NoError(t, err)
		require.NotEmpty(t, matches)
		assert.Equal(t, "1", matches[0].Member.ID)
		for _, m := range matches {
			assert.NotEqual(t, "3", m.Member.ID)
		}
	})

	t.Run("system members are never suggested", func(t *testing.T) {
		matches, err := finder.Find(context.Background(), "club1", "guest")
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("store errors are returned", func(t *testing.T) {
		failing := NewMock()
		failing.ListMembersFunc = func(string) ([]ranking.Member, error) { return nil, errors.New("boom") }
		_, err := NewMemberFinder(failing).Find(context.Background(), "club1", "anna")
		assert.Error(t, err)
	})
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 3, levenshteinDistance([]rune("kitten"), []rune("sitting")))
	assert.Equal(t, 0, levenshteinDistance([]rune("søren"), []rune("søren")))
	assert.Equal(t, 4, levenshteinDistance(nil, []rune("abcd")))
}

func TestMemberFinder_Subsequence(t *testing.T) {
	store := NewMock()
	store.ListMembersFunc = func(clubID string) ([]ranking.Member, error) {
		return []ranking.Member{
			{ID: "1", Name: "Alice Smith", Status: ranking.MemberActive},
			{ID: "2", Name: "Bob Jones", Status: ranking.MemberActive},
			{ID: "3", Name: "Alex Smithson", Status: ranking.MemberSystem},
		}, nil
	}

	matches, err := NewMemberFinder(store).Find(context.Background(), "club1", "alsm")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "1", matches[0].Member.ID)
	assert.Equal(t, minConfidence, matches[0].Confidence)
}
