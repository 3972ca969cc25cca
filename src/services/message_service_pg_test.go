package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sriramnerella/portfolio-server/src/database"
)

// Integration tests for the PostgreSQL-backed path. They skip automatically
// when no test database is reachable.

func TestMessageServicePostgres(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		svc := NewMessageService(tdb.Pool)
		ctx := context.Background()

		t.Run("create and list round trip", func(t *testing.T) {
			tdb.Cleanup()

			first, err := svc.Create(ctx, "Alice", "ALICE@Example.com", "A long enough message.")
			require.NoError(t, err)
			second, err := svc.Create(ctx, "Bob", "bob@example.com", "Another long enough message.")
			require.NoError(t, err)

			messages, err := svc.List(ctx)
			require.NoError(t, err)
			require.Len(t, messages, 2)

			// Newest first
			assert.Equal(t, second.ID, messages[0].ID)
			assert.Equal(t, first.ID, messages[1].ID)
			assert.Equal(t, "alice@example.com", messages[1].Email)
		})

		t.Run("list on empty store", func(t *testing.T) {
			tdb.Cleanup()

			messages, err := svc.List(ctx)
			require.NoError(t, err)
			assert.NotNil(t, messages)
			assert.Empty(t, messages)
		})

		t.Run("delete existing message", func(t *testing.T) {
			tdb.Cleanup()

			msg, err := svc.Create(ctx, "Carol", "carol@example.com", "A long enough message.")
			require.NoError(t, err)

			require.NoError(t, svc.Delete(ctx, msg.ID))

			messages, err := svc.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, messages)
		})

		t.Run("delete unknown id is a no-op", func(t *testing.T) {
			tdb.Cleanup()

			_, err := svc.Create(ctx, "Dave", "dave@example.com", "A long enough message.")
			require.NoError(t, err)

			require.NoError(t, svc.Delete(ctx, uuid.New()))

			messages, err := svc.List(ctx)
			require.NoError(t, err)
			assert.Len(t, messages, 1)
		})
	})
}
