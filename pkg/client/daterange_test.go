package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketRange_ThisWeek(t *testing.T) {
	// Wednesday March 18th; the week began Sunday the 15th.
	now := time.Date(2026, 3, 18, 15, 30, 0, 0, time.Local)

	from, to, ok := BucketRange(BucketThisWeek, now)

	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2026, 3, 18, 0, 0, 0, 0, time.Local), to)
}

func TestBucketRange_ThisWeek_OnSunday(t *testing.T) {
	// On a Sunday the week is a single day.
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.Local)

	from, to, ok := BucketRange(BucketThisWeek, now)

	require.True(t, ok)
	assert.Equal(t, from, to)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), from)
}

func TestBucketRange_ThisMonth(t *testing.T) {
	now := time.Date(2026, 3, 18, 23, 59, 0, 0, time.Local)

	from, to, ok := BucketRange(BucketThisMonth, now)

	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2026, 3, 18, 0, 0, 0, 0, time.Local), to)
}

func TestBucketRange_LastMonth(t *testing.T) {
	now := time.Date(2026, 3, 18, 12, 0, 0, 0, time.Local)

	from, to, ok := BucketRange(BucketLastMonth, now)

	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.Local), to)
}

func TestBucketRange_LastMonth_AcrossYear(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.Local)

	from, to, ok := BucketRange(BucketLastMonth, now)

	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local), to)
}

func TestBucketRange_AllAndCustomHaveNoRange(t *testing.T) {
	now := time.Now()

	_, _, ok := BucketRange(BucketAll, now)
	assert.False(t, ok)

	_, _, ok = BucketRange(BucketCustom, now)
	assert.False(t, ok)
}
