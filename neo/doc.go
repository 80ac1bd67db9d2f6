// Package neo models near-Earth objects and their close approaches to Earth,
// and extracts both from the NASA data files.
//
// An [Object] is identified by its primary designation and may carry an IAU
// name, an equivalent-sphere diameter in kilometers, and NASA's "potentially
// hazardous" marking. The data set has quirks: many objects have no name, and
// many have an unknown diameter (represented as NaN).
//
// A [CloseApproach] records one pass of an object by Earth: the UTC time of
// closest approach, the nominal approach distance in astronomical units, and
// the relative velocity in kilometers per second.
//
// [LoadObjects] reads objects from the NASA CSV export, [LoadApproaches]
// reads close approaches from the NASA cad JSON export, and [NewDatabase]
// links the two collections by designation:
//
//	db, err := neo.Load("data/neos.csv", "data/cad.json")
//	for _, ca := range db.Approaches() {
//	    fmt.Println(ca)
//	}
package neo
