package postgres

import (
	"context"
	"testing"

	"helppro/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// capturedQuery records the SQL and bind variables of the last query built by
// a dry-run session, so tests can pin the generated statement without a
// database.
type capturedQuery struct {
	sql  string
	vars []interface{}
}

func dryRunDB(t *testing.T, captured *capturedQuery) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	require.NoError(t, db.Callback().Query().After("gorm:query").Register("capture_query", func(tx *gorm.DB) {
		captured.sql = tx.Statement.SQL.String()
		captured.vars = tx.Statement.Vars
	}))

	return db
}

func TestVendorRepository_SearchByRadius_QueryShape(t *testing.T) {
	var captured capturedQuery
	repo := NewVendorRepository(dryRunDB(t, &captured))

	_, err := repo.SearchByRadius(context.Background(), repository.RadiusSearchFilter{
		Latitude:  45.4642,
		Longitude: 9.19,
		RadiusKm:  10,
	})
	require.NoError(t, err)

	// Rows without a stored location must never match.
	assert.Contains(t, captured.sql, "location IS NOT NULL")

	// Geodesic distance over geography, with the point built longitude-first.
	assert.Contains(t, captured.sql,
		"ST_DWithin(location::geography, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)")
	require.Len(t, captured.vars, 3)
	assert.Equal(t, 9.19, captured.vars[0])
	assert.Equal(t, 45.4642, captured.vars[1])

	// Kilometers in the filter, meters in the SQL.
	assert.Equal(t, 10000.0, captured.vars[2])

	assert.Contains(t, captured.sql, `FROM "vendors"`)
	assert.Contains(t, captured.sql, "ORDER BY id")
}

func TestVendorRepository_SearchByText_QueryShape(t *testing.T) {
	var captured capturedQuery
	repo := NewVendorRepository(dryRunDB(t, &captured))

	_, err := repo.SearchByText(context.Background(), repository.TextSearchFilter{
		City:     "Milano",
		Postcode: "201",
		Address:  "Roma",
	})
	require.NoError(t, err)

	assert.Contains(t, captured.sql, "city ILIKE $1")
	assert.Contains(t, captured.sql, "postcode ILIKE $2")
	assert.Contains(t, captured.sql, "address ILIKE $3")
	assert.Equal(t, []interface{}{"%Milano%", "%201%", "%Roma%"}, captured.vars)
}

func TestVendorRepository_SearchByText_NoFiltersUnconstrained(t *testing.T) {
	var captured capturedQuery
	repo := NewVendorRepository(dryRunDB(t, &captured))

	_, err := repo.SearchByText(context.Background(), repository.TextSearchFilter{})
	require.NoError(t, err)

	assert.NotContains(t, captured.sql, "WHERE")
	assert.Empty(t, captured.vars)
}
