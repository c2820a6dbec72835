package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateIsIdempotent(t *testing.T) {
	database, err := Open("")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))

	var tables []string
	rows, err := database.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('invoices', 'line_items') ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		tables = append(tables, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"invoices", "line_items"}, tables)
}

func TestLineItemsReferenceInvoices(t *testing.T) {
	database, err := Open(MemoryDSN)
	require.NoError(t, err)
	defer database.Close()
	require.NoError(t, Migrate(database))

	var ddl string
	require.NoError(t, database.QueryRow(`SELECT sql FROM sqlite_master WHERE name = 'line_items'`).Scan(&ddl))
	assert.Contains(t, ddl, "ON DELETE CASCADE")

	var fk int
	require.NoError(t, database.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}
