// Package tracking contains the TrackingEvent record: one immutable entry
// in a parcel's append-only audit trail.
package tracking
