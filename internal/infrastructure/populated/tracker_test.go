package populated

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletstate/internal/domain/entity"
	"walletstate/internal/pkg/logger"
)

func TestTracker_MarkPopulated(t *testing.T) {
	tr := New(0, logger.NewNop())
	before := time.Now()
	tr.MarkPopulated(1, time.Minute)
	tr.MarkPopulated(10, 0)

	got := tr.Populated()
	require.Len(t, got, 2)

	assert.True(t, got[1].Expires.After(before))
	assert.True(t, got[1].Fresh(before))
	assert.False(t, got[1].Fresh(before.Add(2*time.Minute)))

	assert.Equal(t, entity.NeverExpires, got[10].Expires)
	assert.True(t, got[10].Fresh(before.Add(24*time.Hour)))
}

func TestTracker_ExpiredEntriesAreHidden(t *testing.T) {
	tr := New(0, logger.NewNop())
	tr.MarkPopulated(1, time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	assert.Empty(t, tr.Populated())
}

func TestTracker_Forget(t *testing.T) {
	tr := New(time.Minute, logger.NewNop())
	tr.MarkPopulated(137, time.Hour)
	tr.Forget(137)

	assert.Empty(t, tr.Populated())
}
