package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMovieFilterSearchTargetsCastNames(t *testing.T) {
	where, args := buildMovieFilter(MovieQuery{Search: "pacino"})

	require.Len(t, args, 1)
	assert.Equal(t, "%pacino%", args[0])

	// The needle must scan cast member names, never the jsonb text rendering
	// where the literal keys and role values would match.
	assert.Contains(t, where, `c->>'name' ILIKE $1`)
	assert.NotContains(t, where, `cast_members::text`)
}

func TestBuildMovieFilterComposesClauses(t *testing.T) {
	where, args := buildMovieFilter(MovieQuery{Search: "heat", Genre: "Crime", Year: 1995})

	require.Len(t, args, 3)
	assert.Equal(t, "%heat%", args[0])
	assert.Equal(t, "%Crime%", args[1])
	assert.Equal(t, 1995, args[2])

	assert.Contains(t, where, " AND ")
	assert.Contains(t, where, "release_year = $3")
}

func TestBuildMovieFilterEmptyQuery(t *testing.T) {
	where, args := buildMovieFilter(MovieQuery{})

	assert.Empty(t, where)
	assert.Empty(t, args)
}
