// Package kernel contains shared value objects used across the domain
// model: the UUID identifier wrapper and the public TrackingID assigned to
// every parcel.
package kernel
