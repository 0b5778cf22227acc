package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewIsMonotonic(t *testing.T) {
	t.Parallel()

	prev := New()
	for range 100 {
		next := New()
		require.Less(t, prev.String(), next.String(), "ids must be strictly increasing")
		prev = next
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("round trips a generated id", func(t *testing.T) {
		id := New()
		parsed, err := Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("rejects junk", func(t *testing.T) {
		for _, s := range []string{"", "  ", "not-a-ulid", "0000"} {
			_, err := Parse(s)
			require.ErrorIs(t, err, ErrInvalid)
		}
	})
}

func TestNewAtEmbedsTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := NewAt(at)
	require.WithinDuration(t, at, id.Time(), time.Millisecond)
}

func TestZero(t *testing.T) {
	t.Parallel()

	require.True(t, Zero.IsZero())
	require.True(t, Zero.Time().IsZero())
	require.False(t, New().IsZero())
}
