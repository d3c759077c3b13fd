package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/nbametrics/internal/model"
)

var testDirectory = []model.PlayerIdentity{
	{ID: "201939", FullName: "Stephen Curry", Team: "GSW"},
	{ID: "2544", FullName: "LeBron James", Team: "LAL"},
	{ID: "1629027", FullName: "Jaren Jackson Jr.", Team: "MEM"},
	{ID: "100001", FullName: "Marcus Morris", Team: "CLE"},
	{ID: "100002", FullName: "Marcus Morris", Team: "PHI"},
}

func TestResolvePlayer_ExactMatch(t *testing.T) {
	r := NewNameResolver(testDirectory)

	p, err := r.Resolve("Stephen Curry")
	require.NoError(t, err)
	assert.Equal(t, "201939", p.ID)

	// Matching is case-insensitive, mirroring the roster source.
	p, err = r.Resolve("lebron james")
	require.NoError(t, err)
	assert.Equal(t, "2544", p.ID)
}

func TestResolvePlayer_NoPartialMatch(t *testing.T) {
	// Partial names are a deliberate non-match, not a convenience.
	_, err := NewNameResolver(testDirectory).Resolve("Curry")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "player", notFound.Kind)
	assert.Equal(t, "Curry", notFound.Query)
}

func TestResolvePlayer_NotFound(t *testing.T) {
	_, err := NewNameResolver(testDirectory).Resolve("Michael Jordan")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestResolvePlayer_Ambiguous(t *testing.T) {
	_, err := NewNameResolver(testDirectory).Resolve("Marcus Morris")
	var ambiguous *AmbiguousPlayerError
	require.ErrorAs(t, err, &ambiguous)
	// Candidate list length equals the match count.
	assert.Len(t, ambiguous.Candidates, 2)
	assert.Contains(t, err.Error(), "Marcus Morris (CLE)")
	assert.Contains(t, err.Error(), "Marcus Morris (PHI)")
}
