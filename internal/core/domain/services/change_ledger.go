// Package services contains stateless domain services that coordinate
// behavior across aggregates without holding state of their own.
package services

import (
	"strings"
	"time"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
)

// unknownPlaceholder stands in for location facets the operator left empty.
const unknownPlaceholder = "N/A"

// ChangeLedger is the domain service that turns parcel snapshots into
// human-readable audit-trail entries.
//
// An update that changes several facets at once (status, location, city,
// country, actual delivery date) yields a single combined description
// rather than one entry per facet: the ledger stays compact while still
// being a replayable history of what the parcel looked like after each
// mutation.
type ChangeLedger struct{}

// NewChangeLedger creates a ChangeLedger instance.
func NewChangeLedger() ChangeLedger {
	return ChangeLedger{}
}

// DescribeCreation produces the seed entry recorded when a parcel is first
// registered, e.g. "Parcel created at Warehouse A, Rotterdam".
func (ChangeLedger) DescribeCreation(p *parcel.Parcel) string {
	return "Parcel created at " +
		orPlaceholder(p.CurrentLocation()) + ", " +
		orPlaceholder(p.CurrentCity())
}

// DescribeUpdate compares two parcel snapshots and synthesizes a single
// description covering every changed facet. The second return value is
// false when none of the tracked facets (status, location, city, country,
// actual delivery date) differ, in which case no entry should be appended.
//
// Facet phrasing:
//   - status:     "Status changed to IN TRANSIT"
//   - location:   "Location updated to Hub B, Rotterdam, Netherlands"
//   - delivered:  "Delivered on 2026-08-30" (when the actual delivery
//     date becomes set)
//
// Facets are joined with " and ". If a tracked change was detected but no
// facet produced text (the delivery date was cleared), the generic
// "Parcel details updated" is used.
func (ChangeLedger) DescribeUpdate(before, after *parcel.Parcel) (string, bool) {
	statusChanged := before.Status() != after.Status()
	locationChanged := before.CurrentLocation() != after.CurrentLocation()
	cityChanged := before.CurrentCity() != after.CurrentCity()
	countryChanged := before.CurrentCountry() != after.CurrentCountry()
	deliveryDateChanged := !equalTimes(before.ActualDeliveryDate(), after.ActualDeliveryDate())

	if !statusChanged && !locationChanged && !cityChanged && !countryChanged && !deliveryDateChanged {
		return "", false
	}

	var facets []string
	if statusChanged {
		facets = append(facets, "Status changed to "+after.Status().Humanize())
	}
	if locationChanged || cityChanged || countryChanged {
		facets = append(facets, "Location updated to "+
			orPlaceholder(after.CurrentLocation())+", "+
			orPlaceholder(after.CurrentCity())+", "+
			orPlaceholder(after.CurrentCountry()))
	}
	if deliveryDateChanged && after.ActualDeliveryDate() != nil {
		facets = append(facets, "Delivered on "+after.ActualDeliveryDate().Format("2006-01-02"))
	}

	description := strings.Join(facets, " and ")
	if description == "" {
		description = "Parcel details updated"
	}

	return description, true
}

func orPlaceholder(s string) string {
	if s == "" {
		return unknownPlaceholder
	}
	return s
}

func equalTimes(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
