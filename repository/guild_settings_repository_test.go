package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomwizard/repository/testutil"
)

func TestGuildSettingsRepository_GetOrCreatePrefix(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildSettingsRepository(testDB.DB)
	ctx := context.Background()

	t.Run("persists the default on first lookup", func(t *testing.T) {
		prefix, err := repo.GetOrCreatePrefix(ctx, 100, "pinbot ")
		require.NoError(t, err)
		assert.Equal(t, "pinbot ", prefix)

		var stored string
		err = testDB.DB.QueryRow(ctx, "SELECT prefix FROM guild_settings WHERE guild_id = 100").Scan(&stored)
		require.NoError(t, err)
		assert.Equal(t, "pinbot ", stored)
	})

	t.Run("existing prefix wins over the default", func(t *testing.T) {
		err := repo.SetPrefix(ctx, 101, "rw!")
		require.NoError(t, err)

		prefix, err := repo.GetOrCreatePrefix(ctx, 101, "pinbot ")
		require.NoError(t, err)
		assert.Equal(t, "rw!", prefix)
	})

	t.Run("exactly one row per guild", func(t *testing.T) {
		_, err := repo.GetOrCreatePrefix(ctx, 102, "pinbot ")
		require.NoError(t, err)
		_, err = repo.GetOrCreatePrefix(ctx, 102, "other ")
		require.NoError(t, err)

		var count int
		err = testDB.DB.QueryRow(ctx, "SELECT COUNT(*) FROM guild_settings WHERE guild_id = 102").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestGuildSettingsRepository_SetPrefix(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildSettingsRepository(testDB.DB)
	ctx := context.Background()

	t.Run("inserts when missing", func(t *testing.T) {
		err := repo.SetPrefix(ctx, 200, "rw!")
		require.NoError(t, err)

		prefix, err := repo.GetOrCreatePrefix(ctx, 200, "pinbot ")
		require.NoError(t, err)
		assert.Equal(t, "rw!", prefix)
	})

	t.Run("updates when present", func(t *testing.T) {
		require.NoError(t, repo.SetPrefix(ctx, 201, "a!"))
		require.NoError(t, repo.SetPrefix(ctx, 201, "b!"))

		prefix, err := repo.GetOrCreatePrefix(ctx, 201, "pinbot ")
		require.NoError(t, err)
		assert.Equal(t, "b!", prefix)
	})
}

func TestErrorLogRepository_Record(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewErrorLogRepository(testDB.DB)
	ctx := context.Background()

	entry := testutil.CreateTestErrorEntry("rename room")
	require.NoError(t, repo.Record(ctx, entry))

	var (
		commandName string
		commandData string
		errText     string
	)
	err := testDB.DB.QueryRow(ctx,
		"SELECT command_name, command_data, error FROM errors ORDER BY id DESC LIMIT 1",
	).Scan(&commandName, &commandData, &errText)
	require.NoError(t, err)

	assert.Equal(t, "rename room", commandName)
	assert.Equal(t, "test data", commandData)
	assert.Equal(t, "test error", errText)
}
