package parcel

import (
	"fmt"
	"strings"

	"github.com/anj1741/Routegenius-final-project/internal/pkg/errs"
)

// Status represents the delivery state of a parcel. It is stored as a
// string and carries no enforced transition graph: any status may follow
// any other, so operational corrections (e.g. DELIVERED back to IN_TRANSIT
// after a scanning mistake) are always possible. Callers that want a
// stricter workflow inject a TransitionPolicy instead.
type Status string

const (
	// StatusPending is the initial status of a newly registered parcel.
	StatusPending Status = "PENDING"

	// StatusDispatched indicates the parcel has left the sender.
	StatusDispatched Status = "DISPATCHED"

	// StatusInTransit indicates the parcel is between facilities.
	StatusInTransit Status = "IN_TRANSIT"

	// StatusDelivered indicates the parcel reached the recipient.
	StatusDelivered Status = "DELIVERED"

	// StatusException indicates a delivery problem needing attention.
	StatusException Status = "EXCEPTION"

	// StatusReturned indicates the parcel went back to the sender.
	StatusReturned Status = "RETURNED"

	// StatusCancelled indicates the shipment was cancelled.
	StatusCancelled Status = "CANCELLED"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:    {},
		StatusDispatched: {},
		StatusInTransit:  {},
		StatusDelivered:  {},
		StatusException:  {},
		StatusReturned:   {},
		StatusCancelled:  {},
	}
}

// StatusFromString parses a status from its wire/storage representation.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the storage representation, e.g. "IN_TRANSIT".
func (s Status) String() string {
	return string(s)
}

// Humanize returns the customer-facing form with underscores replaced by
// spaces, e.g. "IN TRANSIT".
func (s Status) Humanize() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// TransitionPolicy decides whether a status change is permitted. It is
// injected into the lifecycle so stricter workflows can be added without
// touching the handlers.
type TransitionPolicy func(from, to Status) error

// AllowAnyTransition is the default policy: every transition between valid
// statuses is permitted.
func AllowAnyTransition(_, _ Status) error {
	return nil
}
