// Package parcel contains the Parcel aggregate: one tracked physical
// shipment, its delivery status lifecycle, and the rules for applying
// partial updates to it.
package parcel
