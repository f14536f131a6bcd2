package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"emerald-console/internal/core/domain"
)

func summaries(entries []domain.Activity) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Summary)
	}
	return out
}

func TestActivityLogNewestFirst(t *testing.T) {
	log := NewActivityLog(10)
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		require.NoError(t, log.Record(ctx, domain.Activity{Summary: fmt.Sprint(i)}))
	}

	got, err := log.Recent(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"3", "2", "1"}, summaries(got))
	require.Equal(t, int64(3), got[0].ID)
	require.False(t, got[0].CreatedAt.IsZero())

	got, err = log.Recent(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"3", "2"}, summaries(got))
}

func TestActivityLogEvictsOldest(t *testing.T) {
	log := NewActivityLog(3)
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		require.NoError(t, log.Record(ctx, domain.Activity{Summary: fmt.Sprint(i)}))
	}

	got, err := log.Recent(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, []string{"5", "4", "3"}, summaries(got))
}

func TestActivityLogKeepsGivenTimestamp(t *testing.T) {
	log := NewActivityLog(0)
	at := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	require.NoError(t, log.Record(context.Background(), domain.Activity{CreatedAt: at}))

	got, err := log.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, at, got[0].CreatedAt)
}
