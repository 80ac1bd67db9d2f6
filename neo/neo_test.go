package neo_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go.neoscout.dev/neoscout/neo"
)

func TestObject_Fullname(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		object neo.Object
		want   string
	}{
		"designation and name": {
			object: neo.Object{Designation: "433", Name: "Eros"},
			want:   "433 (Eros)",
		},
		"designation only": {
			object: neo.Object{Designation: "2010 PK9"},
			want:   "2010 PK9",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.object.Fullname())
		})
	}
}

func TestObject_HasDiameter(t *testing.T) {
	t.Parallel()

	known := neo.Object{Designation: "433", Diameter: 16.84}
	unknown := neo.Object{Designation: "2010 PK9", Diameter: math.NaN()}

	assert.True(t, known.HasDiameter())
	assert.False(t, unknown.HasDiameter())
}

func TestObject_String(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		object neo.Object
		want   string
	}{
		"hazardous with name": {
			object: neo.Object{
				Designation: "433",
				Name:        "Eros",
				Diameter:    16.84,
				Hazardous:   true,
			},
			want: "NEO 433 (Eros) has a diameter of 16.840 km and is potentially hazardous",
		},
		"not hazardous without name": {
			object: neo.Object{
				Designation: "2010 PK9",
				Diameter:    0.5,
			},
			want: "NEO 2010 PK9 has a diameter of 0.500 km and is not potentially hazardous",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.object.String())
		})
	}
}

func TestCloseApproach_String(t *testing.T) {
	t.Parallel()

	ca := neo.CloseApproach{
		Designation: "433",
		Time:        time.Date(2020, time.January, 1, 12, 30, 0, 0, time.UTC),
		Distance:    0.25,
		Velocity:    18.5,
	}

	// Unlinked approaches fall back to the designation.
	assert.Equal(t,
		`On 2020-01-01 12:30, "433" approaches Earth at a distance of 0.25 au and a velocity of 18.50 km/s`,
		ca.String())

	ca.NEO = &neo.Object{Designation: "433", Name: "Eros"}

	assert.Equal(t,
		`On 2020-01-01 12:30, "433 (Eros)" approaches Earth at a distance of 0.25 au and a velocity of 18.50 km/s`,
		ca.String())
}

func TestCloseApproach_TimeStr(t *testing.T) {
	t.Parallel()

	ca := neo.CloseApproach{
		Time: time.Date(1999, time.December, 31, 23, 59, 0, 0, time.UTC),
	}

	assert.Equal(t, "1999-12-31 23:59", ca.TimeStr())
}
