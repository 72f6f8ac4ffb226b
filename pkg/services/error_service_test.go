package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent/errorrecord"
	testdb "github.com/loop-symphony/symphony/test/database"
)

func TestErrorService_RecordError(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewErrorService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("journals the record and opens a pattern", func(t *testing.T) {
		taskID := "task-1"
		record, err := service.RecordError(ctx, app.ID, &taskID, errorrecord.SourceTool, "timeout",
			"tavily search timed out after 30s", map[string]interface{}{"query": "golang news"})
		require.NoError(t, err)
		assert.Equal(t, errorrecord.SourceTool, record.Source)
		require.NotNil(t, record.TaskID)
		assert.Equal(t, taskID, *record.TaskID)

		patterns, err := service.TopPatterns(ctx, app.ID, 10)
		require.NoError(t, err)
		require.Len(t, patterns, 1)
		assert.Equal(t, 1, patterns[0].Occurrences)
	})

	t.Run("repeats fold into one pattern", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := service.RecordError(ctx, app.ID, nil, errorrecord.SourceInstrument, "loop_stall",
				"research loop made no progress", nil)
			require.NoError(t, err)
		}

		patterns, err := service.TopPatterns(ctx, app.ID, 10)
		require.NoError(t, err)
		require.Len(t, patterns, 2)
		assert.Equal(t, 3, patterns[0].Occurrences)
		assert.Equal(t, "loop_stall", patterns[0].Kind)

		records, err := service.RecentErrors(ctx, app.ID, 50)
		require.NoError(t, err)
		assert.Len(t, records, 4)
	})

	t.Run("case and whitespace do not split patterns", func(t *testing.T) {
		_, err := service.RecordError(ctx, app.ID, nil, errorrecord.SourceRoom, "delegation",
			"Room  Unreachable", nil)
		require.NoError(t, err)
		_, err = service.RecordError(ctx, app.ID, nil, errorrecord.SourceRoom, "delegation",
			"room unreachable", nil)
		require.NoError(t, err)

		patterns, err := service.TopPatterns(ctx, app.ID, 10)
		require.NoError(t, err)
		require.Len(t, patterns, 3)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := service.RecordError(ctx, "", nil, errorrecord.SourceTool, "kind", "msg", nil)
		assert.True(t, IsValidationError(err))
		_, err = service.RecordError(ctx, app.ID, nil, errorrecord.SourceTool, "", "msg", nil)
		assert.True(t, IsValidationError(err))
		_, err = service.RecordError(ctx, app.ID, nil, errorrecord.SourceTool, "kind", "", nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestErrorService_Listings(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewErrorService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)
	other := createTestApp(t, client.Client)

	_, err := service.RecordError(ctx, app.ID, nil, errorrecord.SourceTool, "timeout", "slow upstream", nil)
	require.NoError(t, err)
	_, err = service.RecordError(ctx, other.ID, nil, errorrecord.SourceTool, "timeout", "slow upstream", nil)
	require.NoError(t, err)

	t.Run("errors are scoped per app", func(t *testing.T) {
		records, err := service.RecentErrors(ctx, app.ID, 50)
		require.NoError(t, err)
		assert.Len(t, records, 1)

		patterns, err := service.TopPatterns(ctx, other.ID, 10)
		require.NoError(t, err)
		assert.Len(t, patterns, 1)
	})

	t.Run("counts errors inside the window", func(t *testing.T) {
		n, err := service.CountRecent(ctx, app.ID, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		// A window in the past sees nothing.
		n, err = service.CountRecent(ctx, app.ID, time.Nanosecond)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func TestSignatureFor(t *testing.T) {
	t.Run("truncates long messages", func(t *testing.T) {
		long := make([]byte, 300)
		for i := range long {
			long[i] = 'a'
		}
		sig := signatureFor(errorrecord.SourceTool, "timeout", string(long))
		assert.LessOrEqual(t, len(sig), len("tool:timeout:")+80)
	})

	t.Run("normalizes case and spacing", func(t *testing.T) {
		a := signatureFor(errorrecord.SourceRoom, "delegation", "Room\tUnreachable")
		b := signatureFor(errorrecord.SourceRoom, "delegation", "room unreachable")
		assert.Equal(t, a, b)
	})
}
