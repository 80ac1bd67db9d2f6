package neo

import (
	"fmt"
	"math"
	"time"
)

// Time formats used by the NASA data set.
const (
	// CalendarFormat is the close-approach calendar date format in the cad
	// JSON export, e.g. "2020-Jan-01 12:30".
	CalendarFormat = "2006-Jan-02 15:04"
	// TimeFormat is the format used when rendering approach times for humans
	// and for serialized output.
	TimeFormat = "2006-01-02 15:04"
)

// Object is a near-Earth object (NEO).
//
// The primary designation is required and unique within the data set; it is
// the object's name to computer systems. The IAU name is optional (empty when
// absent) and is the object's name to humans. Diameter is the equivalent
// sphere diameter in kilometers, NaN when unknown. Hazardous reports whether
// NASA has marked the object as a "Potentially Hazardous Asteroid".
//
// Approaches holds the object's close approaches; it is populated by
// [NewDatabase].
type Object struct {
	Designation string
	Name        string
	Diameter    float64
	Hazardous   bool
	Approaches  []*CloseApproach
}

// Fullname returns the designation together with the IAU name, when one
// exists.
func (o *Object) Fullname() string {
	if o.Name == "" {
		return o.Designation
	}

	return fmt.Sprintf("%s (%s)", o.Designation, o.Name)
}

// HasDiameter reports whether the object's diameter is known.
func (o *Object) HasDiameter() bool {
	return !math.IsNaN(o.Diameter)
}

// String returns a human-readable description of the object.
func (o *Object) String() string {
	hazard := "is not"
	if o.Hazardous {
		hazard = "is"
	}

	return fmt.Sprintf("NEO %s has a diameter of %.3f km and %s potentially hazardous",
		o.Fullname(), o.Diameter, hazard)
}

// CloseApproach is one pass of a near-Earth object by Earth.
//
// Time is the UTC time of closest approach, Distance the nominal approach
// distance in astronomical units, and Velocity the relative velocity in
// kilometers per second. NEO references the approaching [Object]; it is nil
// until linked by [NewDatabase], and remains nil when the data set has no
// object for the designation.
type CloseApproach struct {
	Designation string
	Time        time.Time
	Distance    float64
	Velocity    float64
	NEO         *Object
}

// TimeStr returns the approach time formatted with [TimeFormat].
func (ca *CloseApproach) TimeStr() string {
	return ca.Time.Format(TimeFormat)
}

// String returns a human-readable description of the close approach.
func (ca *CloseApproach) String() string {
	name := ca.Designation
	if ca.NEO != nil {
		name = ca.NEO.Fullname()
	}

	return fmt.Sprintf("On %s, %q approaches Earth at a distance of %.2f au and a velocity of %.2f km/s",
		ca.TimeStr(), name, ca.Distance, ca.Velocity)
}
