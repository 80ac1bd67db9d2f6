package query

import (
	"errors"
	"math"
	"time"

	"go.neoscout.dev/neoscout/neo"
)

// ErrInvalidCriteria indicates criteria that cannot be compiled into a
// [Filter].
var ErrInvalidCriteria = errors.New("invalid criteria")

// Filter selects close approaches matching a conjunction of criteria.
//
// Zero times and NaN bounds mark a criterion as disabled. Hazardous is a
// tri-state: nil matches everything, otherwise the object's marking must
// equal the pointed-to value.
//
// Create instances with [Config.NewFilter], or populate fields directly.
type Filter struct {
	Hazardous *bool

	Date      time.Time
	StartDate time.Time
	EndDate   time.Time

	MinDistance float64
	MaxDistance float64
	MinVelocity float64
	MaxVelocity float64
	MinDiameter float64
	MaxDiameter float64

	Limit int
}

// Select returns the approaches matching every criterion, in input order,
// capped at Limit when Limit is positive.
func (f *Filter) Select(approaches []*neo.CloseApproach) []*neo.CloseApproach {
	var results []*neo.CloseApproach

	for _, ca := range approaches {
		if !f.Matches(ca) {
			continue
		}

		results = append(results, ca)

		if f.Limit > 0 && len(results) == f.Limit {
			break
		}
	}

	return results
}

// Matches reports whether the approach satisfies every criterion.
func (f *Filter) Matches(ca *neo.CloseApproach) bool {
	return f.matchesDate(ca) &&
		f.matchesApproach(ca) &&
		f.matchesObject(ca.NEO)
}

// matchesDate checks the date criteria. Approach times carry a time of day;
// date criteria compare against the UTC calendar date only.
func (f *Filter) matchesDate(ca *neo.CloseApproach) bool {
	date := ca.Time.Truncate(24 * time.Hour)

	if !f.Date.IsZero() && !date.Equal(f.Date) {
		return false
	}

	if !f.StartDate.IsZero() && date.Before(f.StartDate) {
		return false
	}

	if !f.EndDate.IsZero() && date.After(f.EndDate) {
		return false
	}

	return true
}

// matchesApproach checks the distance and velocity bounds.
func (f *Filter) matchesApproach(ca *neo.CloseApproach) bool {
	return withinMin(ca.Distance, f.MinDistance) &&
		withinMax(ca.Distance, f.MaxDistance) &&
		withinMin(ca.Velocity, f.MinVelocity) &&
		withinMax(ca.Velocity, f.MaxVelocity)
}

// matchesObject checks the diameter and hazard criteria. A nil object fails
// any enabled object criterion, and an unknown (NaN) diameter fails any
// diameter bound.
func (f *Filter) matchesObject(obj *neo.Object) bool {
	diameterBound := !math.IsNaN(f.MinDiameter) || !math.IsNaN(f.MaxDiameter)

	if obj == nil {
		return !diameterBound && f.Hazardous == nil
	}

	if diameterBound && !obj.HasDiameter() {
		return false
	}

	if !withinMin(obj.Diameter, f.MinDiameter) || !withinMax(obj.Diameter, f.MaxDiameter) {
		return false
	}

	if f.Hazardous != nil && obj.Hazardous != *f.Hazardous {
		return false
	}

	return true
}

// withinMin reports whether v satisfies an inclusive lower bound.
// NaN bounds are disabled and always match.
func withinMin(v, bound float64) bool {
	return math.IsNaN(bound) || v >= bound
}

// withinMax reports whether v satisfies an inclusive upper bound.
// NaN bounds are disabled and always match.
func withinMax(v, bound float64) bool {
	return math.IsNaN(bound) || v <= bound
}
