// Package write serializes close-approach query results to CSV or JSON.
//
// [CSV] and [JSON] write a result stream to an [io.Writer] in the respective
// format; [ToFile] dispatches on the output path's extension:
//
//	err := write.ToFile("results.csv", results)
//
// Each CSV row and JSON element carries the approach fields plus the
// attributes of the associated object, when one is linked. An unknown
// diameter serializes as "NaN" in CSV and as null in JSON.
package write

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.neoscout.dev/neoscout/neo"
)

// ErrUnsupportedFormat indicates an output path whose extension maps to no
// writer.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// header is the CSV column set, approach fields first, then object fields.
var header = []string{
	"datetime_utc",
	"distance_au",
	"velocity_km_s",
	"designation",
	"name",
	"diameter_km",
	"potentially_hazardous",
}

// ToFile writes results to path, choosing the format by extension.
// Supported extensions are .csv and .json. An existing file is overwritten.
func ToFile(path string, results []*neo.CloseApproach) error {
	var write func(io.Writer, []*neo.CloseApproach) error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = CSV
	case ".json":
		write = JSON
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Create(path) //nolint:gosec // Output path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	err = write(f, results)
	if err != nil {
		_ = f.Close()

		return err
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// CSV writes results as CSV with a header row. Approaches without a linked
// object leave the object columns empty.
func CSV(w io.Writer, results []*neo.CloseApproach) error {
	cw := csv.NewWriter(w)

	err := cw.Write(header)
	if err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	for _, ca := range results {
		row := []string{
			ca.TimeStr(),
			formatFloat(ca.Distance),
			formatFloat(ca.Velocity),
			ca.Designation,
			"", "", "",
		}

		if ca.NEO != nil {
			row[4] = ca.NEO.Name
			row[5] = formatFloat(ca.NEO.Diameter)
			row[6] = strconv.FormatBool(ca.NEO.Hazardous)
		}

		err = cw.Write(row)
		if err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	cw.Flush()

	err = cw.Error()
	if err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// approachRecord is the JSON shape of one result element.
type approachRecord struct {
	NEO         *objectRecord `json:"neo,omitempty"`
	DatetimeUTC string        `json:"datetime_utc"`
	Designation string        `json:"designation"`
	DistanceAU  float64       `json:"distance_au"`
	VelocityKMS float64       `json:"velocity_km_s"`
}

// objectRecord is the JSON shape of a linked object.
type objectRecord struct {
	Designation string   `json:"designation"`
	Name        string   `json:"name"`
	DiameterKM  nanFloat `json:"diameter_km"`
	Hazardous   bool     `json:"potentially_hazardous"`
}

// nanFloat marshals NaN as null, since JSON has no NaN literal.
type nanFloat float64

func (f nanFloat) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f)) {
		return []byte("null"), nil
	}

	return json.Marshal(float64(f))
}

// JSON writes results as a JSON array. Approaches without a linked object
// omit the neo key.
func JSON(w io.Writer, results []*neo.CloseApproach) error {
	records := make([]approachRecord, 0, len(results))

	for _, ca := range results {
		rec := approachRecord{
			DatetimeUTC: ca.TimeStr(),
			DistanceAU:  ca.Distance,
			VelocityKMS: ca.Velocity,
			Designation: ca.Designation,
		}

		if ca.NEO != nil {
			rec.NEO = &objectRecord{
				Designation: ca.NEO.Designation,
				Name:        ca.NEO.Name,
				DiameterKM:  nanFloat(ca.NEO.Diameter),
				Hazardous:   ca.NEO.Hazardous,
			}
		}

		records = append(records, rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err := enc.Encode(records)
	if err != nil {
		return fmt.Errorf("write json: %w", err)
	}

	return nil
}
