package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildActivityUpsertQuery(t *testing.T) {
	t.Run("single row", func(t *testing.T) {
		query := buildActivityUpsertQuery(1)

		assert.True(t, strings.HasPrefix(query, "INSERT INTO activities ("))
		assert.True(t, strings.HasSuffix(query, " ON CONFLICT (foursquare_id) DO NOTHING RETURNING id"))
		assert.Contains(t, query, "foursquare_id")
		assert.Contains(t, query, "($1, ")
		assert.Contains(t, query, "$28)")
		assert.NotContains(t, query, "$29")
	})

	t.Run("placeholders continue across rows", func(t *testing.T) {
		query := buildActivityUpsertQuery(3)

		// 28 columns per row
		assert.Contains(t, query, "($29, ")
		assert.Contains(t, query, "($57, ")
		assert.Contains(t, query, "$84)")
		assert.NotContains(t, query, "$85")
		// column list + three value groups + conflict target
		assert.Equal(t, 5, strings.Count(query, "("))
	})

	t.Run("placeholder count matches batch of fifty", func(t *testing.T) {
		query := buildActivityUpsertQuery(50)
		require.Contains(t, query, "$1400)")
		assert.NotContains(t, query, "$1401")
	})
}
