package translation

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogPostgres(t *testing.T) {
	dsn := os.Getenv("ITEMQUERY_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("ITEMQUERY_TEST_POSTGRES_DSN not set")
	}

	catalog, err := LoadCatalogPostgres(context.Background(), dsn)
	require.NoError(t, err)
	assert.NoError(t, catalog.Validate())
}

func TestLoadCatalogPostgresBadDSN(t *testing.T) {
	_, err := LoadCatalogPostgres(context.Background(), "postgres://%zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to postgres")
}
