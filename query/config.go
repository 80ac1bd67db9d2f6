package query

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DateFormat is the ISO date format accepted by the date flags.
const DateFormat = "2006-01-02"

// Flags holds CLI flag names for query configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Limit        string
	Date         string
	StartDate    string
	EndDate      string
	MinDistance  string
	MaxDistance  string
	MinVelocity  string
	MaxVelocity  string
	MinDiameter  string
	MaxDiameter  string
	Hazardous    string
	NotHazardous string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for query configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewFilter] to compile the values into
// a [Filter].
type Config struct {
	Flags Flags

	// Date criteria, as ISO date strings (empty = disabled).
	Date      string
	StartDate string
	EndDate   string

	// Range criteria (NaN = disabled).
	MinDistance float64
	MaxDistance float64
	MinVelocity float64
	MaxVelocity float64
	MinDiameter float64
	MaxDiameter float64

	// Limit caps the number of selected approaches (0 = no limit).
	Limit int

	// Hazard criteria. Setting both is an error.
	Hazardous    bool
	NotHazardous bool
}

// NewConfig creates a new [Config] with default flag names and all criteria
// disabled. Use [Config.RegisterFlags] to add CLI flags, or set values
// directly.
func NewConfig() *Config {
	f := Flags{
		Limit:        "limit",
		Date:         "date",
		StartDate:    "start-date",
		EndDate:      "end-date",
		MinDistance:  "min-distance",
		MaxDistance:  "max-distance",
		MinVelocity:  "min-velocity",
		MaxVelocity:  "max-velocity",
		MinDiameter:  "min-diameter",
		MaxDiameter:  "max-diameter",
		Hazardous:    "hazardous",
		NotHazardous: "not-hazardous",
	}

	return f.NewConfig()
}

// RegisterFlags adds query flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.Limit, c.Flags.Limit, 0,
		"maximum number of matches (0 = no limit)")

	// Date criteria.
	flags.StringVar(&c.Date, c.Flags.Date, "",
		fmt.Sprintf("only match approaches on this date (%s)", DateFormat))
	flags.StringVar(&c.StartDate, c.Flags.StartDate, "",
		fmt.Sprintf("only match approaches on or after this date (%s)", DateFormat))
	flags.StringVar(&c.EndDate, c.Flags.EndDate, "",
		fmt.Sprintf("only match approaches on or before this date (%s)", DateFormat))

	// Range criteria. NaN marks a bound as unset.
	flags.Float64Var(&c.MinDistance, c.Flags.MinDistance, math.NaN(),
		"only match approaches at or beyond this distance (au)")
	flags.Float64Var(&c.MaxDistance, c.Flags.MaxDistance, math.NaN(),
		"only match approaches at or within this distance (au)")
	flags.Float64Var(&c.MinVelocity, c.Flags.MinVelocity, math.NaN(),
		"only match approaches at or above this velocity (km/s)")
	flags.Float64Var(&c.MaxVelocity, c.Flags.MaxVelocity, math.NaN(),
		"only match approaches at or below this velocity (km/s)")
	flags.Float64Var(&c.MinDiameter, c.Flags.MinDiameter, math.NaN(),
		"only match objects at least this large (km)")
	flags.Float64Var(&c.MaxDiameter, c.Flags.MaxDiameter, math.NaN(),
		"only match objects at most this large (km)")

	// Hazard criteria.
	flags.BoolVar(&c.Hazardous, c.Flags.Hazardous, false,
		"only match potentially hazardous objects")
	flags.BoolVar(&c.NotHazardous, c.Flags.NotHazardous, false,
		"only match objects that are not potentially hazardous")
}

// RegisterCompletions registers shell completions for query flags on cmd.
// All query flags take values that are not file paths.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	valueFlags := []string{
		c.Flags.Limit,
		c.Flags.Date,
		c.Flags.StartDate,
		c.Flags.EndDate,
		c.Flags.MinDistance,
		c.Flags.MaxDistance,
		c.Flags.MinVelocity,
		c.Flags.MaxVelocity,
		c.Flags.MinDiameter,
		c.Flags.MaxDiameter,
	}

	for _, flag := range valueFlags {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewFilter compiles this [Config] into a [Filter].
func (c *Config) NewFilter() (*Filter, error) {
	f := &Filter{
		Limit:       c.Limit,
		MinDistance: c.MinDistance,
		MaxDistance: c.MaxDistance,
		MinVelocity: c.MinVelocity,
		MaxVelocity: c.MaxVelocity,
		MinDiameter: c.MinDiameter,
		MaxDiameter: c.MaxDiameter,
	}

	var err error

	f.Date, err = parseDate(c.Flags.Date, c.Date)
	if err != nil {
		return nil, err
	}

	f.StartDate, err = parseDate(c.Flags.StartDate, c.StartDate)
	if err != nil {
		return nil, err
	}

	f.EndDate, err = parseDate(c.Flags.EndDate, c.EndDate)
	if err != nil {
		return nil, err
	}

	switch {
	case c.Hazardous && c.NotHazardous:
		return nil, fmt.Errorf("%w: --%s and --%s are mutually exclusive",
			ErrInvalidCriteria, c.Flags.Hazardous, c.Flags.NotHazardous)
	case c.Hazardous:
		hazardous := true
		f.Hazardous = &hazardous
	case c.NotHazardous:
		hazardous := false
		f.Hazardous = &hazardous
	}

	return f, nil
}

// parseDate parses an ISO date flag value, returning the zero time when the
// flag is unset.
func parseDate(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.ParseInLocation(DateFormat, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: --%s %q: expected %s",
			ErrInvalidCriteria, flag, value, DateFormat)
	}

	return t, nil
}
