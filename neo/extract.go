package neo

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"
)

// Sentinel errors returned by the extraction functions.
var (
	ErrReadInput     = errors.New("read input")
	ErrMissingColumn = errors.New("missing column")
	ErrMissingField  = errors.New("missing field")
	ErrInvalidRecord = errors.New("invalid record")
)

// LoadObjects reads near-Earth objects from a NASA CSV export.
//
// The export carries one row per object with (among many others) the columns
// pdes (primary designation), name (IAU name, often empty), diameter
// (kilometers, often empty), and pha ("Y" when potentially hazardous). Empty
// names stay empty and empty diameters become NaN.
func LoadObjects(path string) ([]*Object, error) {
	f, err := os.Open(path) //nolint:gosec // Data path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	defer f.Close() //nolint:errcheck // Read-only file.

	return readObjects(f)
}

func readObjects(r io.Reader) ([]*Object, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: csv header: %w", ErrReadInput, err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[name] = i
	}

	for _, name := range []string{"pdes", "name", "diameter", "pha"} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var objects []*Object

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: csv row: %w", ErrReadInput, err)
		}

		obj, err := newObject(
			row[cols["pdes"]],
			row[cols["name"]],
			row[cols["diameter"]],
			row[cols["pha"]],
		)
		if err != nil {
			return nil, err
		}

		objects = append(objects, obj)
	}

	return objects, nil
}

// newObject builds an [Object] from raw CSV cell values, applying the data
// set's conventions for absent names and diameters.
func newObject(designation, name, diameter, hazardous string) (*Object, error) {
	d := math.NaN()

	if diameter != "" {
		parsed, err := strconv.ParseFloat(diameter, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: diameter %q: %w", ErrInvalidRecord, diameter, err)
		}

		d = parsed
	}

	return &Object{
		Designation: designation,
		Name:        name,
		Diameter:    d,
		Hazardous:   hazardous == "Y",
	}, nil
}

// cadDocument is the shape of the NASA cad JSON export: a list of field
// names and a list of rows, each row a positional list of values.
type cadDocument struct {
	Fields []string    `json:"fields"`
	Data   [][]*string `json:"data"`
}

// LoadApproaches reads close approaches from a NASA cad JSON export.
//
// Only the des (designation), cd (calendar date), dist (distance, au), and
// v_rel (relative velocity, km/s) fields are consumed; positions are resolved
// through the document's fields list rather than assumed.
func LoadApproaches(path string) ([]*CloseApproach, error) {
	f, err := os.Open(path) //nolint:gosec // Data path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	defer f.Close() //nolint:errcheck // Read-only file.

	return readApproaches(f)
}

func readApproaches(r io.Reader) ([]*CloseApproach, error) {
	var doc cadDocument

	err := json.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: cad json: %w", ErrReadInput, err)
	}

	idx := map[string]int{}
	for i, name := range doc.Fields {
		idx[name] = i
	}

	required := []string{"des", "cd", "dist", "v_rel"}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}

	approaches := make([]*CloseApproach, 0, len(doc.Data))

	for i, row := range doc.Data {
		if len(row) != len(doc.Fields) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d",
				ErrInvalidRecord, i, len(row), len(doc.Fields))
		}

		ca, err := newApproach(
			cell(row, idx["des"]),
			cell(row, idx["cd"]),
			cell(row, idx["dist"]),
			cell(row, idx["v_rel"]),
		)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		approaches = append(approaches, ca)
	}

	return approaches, nil
}

func cell(row []*string, i int) string {
	if row[i] == nil {
		return ""
	}

	return *row[i]
}

// newApproach builds a [CloseApproach] from raw cad JSON cell values.
func newApproach(designation, calendarDate, distance, velocity string) (*CloseApproach, error) {
	t, err := time.ParseInLocation(CalendarFormat, calendarDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: calendar date %q: %w", ErrInvalidRecord, calendarDate, err)
	}

	dist, err := strconv.ParseFloat(distance, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: distance %q: %w", ErrInvalidRecord, distance, err)
	}

	vel, err := strconv.ParseFloat(velocity, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: velocity %q: %w", ErrInvalidRecord, velocity, err)
	}

	return &CloseApproach{
		Designation: designation,
		Time:        t,
		Distance:    dist,
		Velocity:    vel,
	}, nil
}
