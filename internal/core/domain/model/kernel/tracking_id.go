package kernel

import (
	"fmt"
	"strings"

	"github.com/anj1741/Routegenius-final-project/internal/pkg/errs"

	"github.com/google/uuid"
)

// trackingIDLength is the fixed length of a tracking identifier: a 128-bit
// value rendered as uppercase hexadecimal.
const trackingIDLength = 32

// ErrTrackingIDIsNotConstructed indicates that a TrackingID was not
// initialized through NewTrackingID or TrackingIDFromString.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingID must be created via NewTrackingID or TrackingIDFromString",
)

// TrackingID is the public, human-shareable identifier of a parcel. It is
// assigned exactly once at parcel creation and never changes.
//
// A TrackingID is a fixed-length uppercase hexadecimal string derived from
// a cryptographically random 128-bit value. Collision probability is
// treated as negligible; the storage layer still carries a unique index as
// a backstop.
type TrackingID struct {
	value string
}

// NewTrackingID generates a new random tracking identifier. It has no
// failure mode and holds no shared mutable state, so it is safe to call
// from any number of goroutines without coordination.
func NewTrackingID() TrackingID {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return TrackingID{value: raw}
}

// TrackingIDFromString reconstructs a TrackingID from its string form,
// e.g. when loading from persistence or parsing a tracking URL. The input
// must be exactly 32 uppercase hexadecimal characters.
func TrackingIDFromString(s string) (TrackingID, error) {
	if len(s) != trackingIDLength {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingId",
			fmt.Errorf("length must be %d, got %d", trackingIDLength, len(s)),
		)
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			return TrackingID{}, errs.NewValueIsInvalidErrorWithCause(
				"trackingId",
				fmt.Errorf("character %q is not uppercase hexadecimal", r),
			)
		}
	}
	return TrackingID{value: s}, nil
}

// String returns the tracking identifier string.
func (t TrackingID) String() string {
	return t.value
}

// IsEqual compares two tracking identifiers by value.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

// Validate returns ErrTrackingIDIsNotConstructed for the zero value.
func (t TrackingID) Validate() error {
	if t.value == "" {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}
