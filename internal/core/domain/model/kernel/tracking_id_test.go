package kernel_test

import (
	"testing"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingID(t *testing.T) {
	t.Run("generates_32_uppercase_hex_characters", func(t *testing.T) {
		id := kernel.NewTrackingID()

		require.NoError(t, id.Validate())
		assert.Len(t, id.String(), 32)
		for _, r := range id.String() {
			valid := (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F')
			assert.True(t, valid, "unexpected character %q", r)
		}
	})

	t.Run("generates_unique_ids", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			id := kernel.NewTrackingID()
			assert.False(t, seen[id.String()], "duplicate tracking id %s", id)
			seen[id.String()] = true
		}
	})

	t.Run("safe_for_concurrent_callers", func(t *testing.T) {
		const goroutines = 16
		ids := make(chan kernel.TrackingID, goroutines)
		for range goroutines {
			go func() {
				ids <- kernel.NewTrackingID()
			}()
		}

		seen := make(map[string]bool)
		for range goroutines {
			id := <-ids
			require.NoError(t, id.Validate())
			assert.False(t, seen[id.String()])
			seen[id.String()] = true
		}
	})
}

func TestTrackingIDFromString(t *testing.T) {
	t.Run("round_trips_generated_id", func(t *testing.T) {
		original := kernel.NewTrackingID()

		restored, err := kernel.TrackingIDFromString(original.String())
		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("rejects_wrong_length", func(t *testing.T) {
		_, err := kernel.TrackingIDFromString("ABC123")

		require.Error(t, err)
	})

	t.Run("rejects_lowercase", func(t *testing.T) {
		_, err := kernel.TrackingIDFromString("9f2a77c41b5e4d3a8c6b0f1e2d4a5b6c")

		require.Error(t, err)
	})

	t.Run("rejects_non_hex_characters", func(t *testing.T) {
		_, err := kernel.TrackingIDFromString("ZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ")

		require.Error(t, err)
	})
}

func TestTrackingID_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id kernel.TrackingID

		require.Error(t, id.Validate())
	})
}
