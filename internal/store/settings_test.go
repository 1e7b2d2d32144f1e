package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocksync/stocksync/internal/db"
)

func TestGetJWTSecret_GeneratesAndPersists(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	secret1, err := GetJWTSecret(ctx, database)
	require.NoError(t, err)
	assert.Len(t, secret1, 64) // 32 bytes = 64 hex chars

	secret2, err := GetJWTSecret(ctx, database)
	require.NoError(t, err)
	assert.Equal(t, secret1, secret2)
}

func TestPutAndGetSetting(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, ok, err := GetSetting(ctx, database, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, PutSetting(ctx, database, "k", "one"))
	require.NoError(t, PutSetting(ctx, database, "k", "two"))

	value, ok, err := GetSetting(ctx, database, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", value)
}
