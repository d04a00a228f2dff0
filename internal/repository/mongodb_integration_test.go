//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	uri := getSharedContainerURI()
	dbName := sanitizeDBName(t.Name())

	db, err := NewMongoDB(uri, dbName)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("connection successful", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.NotNil(t, db.Sessions)
		assert.NotNil(t, db.Logs)
	})

	t.Run("ping successful", func(t *testing.T) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		assert.NoError(t, db.Client.Ping(pingCtx, nil))
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("set logs TTL", func(t *testing.T) {
		assert.NoError(t, db.SetLogsTTL(ctx, 30))
	})

	t.Run("set sessions TTL", func(t *testing.T) {
		assert.NoError(t, db.SetSessionsTTL(ctx, 24*time.Hour))
	})

	t.Run("set sessions TTL replaces existing index", func(t *testing.T) {
		require.NoError(t, db.SetSessionsTTL(ctx, 24*time.Hour))

		err := db.SetSessionsTTL(ctx, 48*time.Hour)
		assert.NoError(t, err)
	})
}
