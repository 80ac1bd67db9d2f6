package bench

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Sentinel errors returned when loading or validating plans.
var (
	ErrReadPlan    = errors.New("read plan")
	ErrInvalidPlan = errors.New("invalid plan")
)

// Invocation pairs a profiler output path with the arguments for one run of
// the target's query command.
type Invocation struct {
	// Profile is the path the child writes its CPU profile to. It must be
	// unique within a plan; re-runs overwrite the file.
	Profile string `yaml:"profile" json:"profile"`

	// Args are the query arguments, e.g. ["--limit", "10"].
	Args []string `yaml:"args" json:"args"`
}

// Plan is an ordered list of invocations, executed first to last.
type Plan struct {
	// Target overrides the runner's target binary when set.
	Target string `yaml:"target,omitempty" json:"target,omitempty"`

	Invocations []Invocation `yaml:"invocations" json:"invocations"`
}

// DefaultPlan returns the built-in invocation matrix: ten runs covering the
// full query flag surface, writing profiles to profile/file1.prof through
// profile/file10.prof. The last two runs additionally write results.csv and
// results.json through the target's own outfile flag.
func DefaultPlan() Plan {
	return Plan{
		Invocations: []Invocation{
			{Profile: "profile/file1.prof", Args: []string{"--limit", "10"}},
			{Profile: "profile/file2.prof", Args: []string{"--date", "2020-01-01"}},
			{Profile: "profile/file3.prof", Args: []string{"--start-date", "2020-01-01", "--end-date", "2020-12-31"}},
			{Profile: "profile/file4.prof", Args: []string{"--min-distance", "0.1", "--max-distance", "0.5"}},
			{Profile: "profile/file5.prof", Args: []string{"--min-velocity", "15", "--max-velocity", "25"}},
			{Profile: "profile/file6.prof", Args: []string{"--min-diameter", "0.25", "--max-diameter", "1.5"}},
			{Profile: "profile/file7.prof", Args: []string{"--hazardous"}},
			{Profile: "profile/file8.prof", Args: []string{"--not-hazardous", "--limit", "50"}},
			{Profile: "profile/file9.prof", Args: []string{"--start-date", "2020-01-01", "--outfile", "results.csv"}},
			{Profile: "profile/file10.prof", Args: []string{"--start-date", "2020-01-01", "--outfile", "results.json"}},
		},
	}
}

// LoadPlan reads a plan from a YAML file and validates it.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Plan path from CLI flag is expected.
	if err != nil {
		return Plan{}, fmt.Errorf("%w: %w", ErrReadPlan, err)
	}

	var plan Plan

	err = yaml.Unmarshal(data, &plan)
	if err != nil {
		return Plan{}, fmt.Errorf("%w: %w", ErrReadPlan, err)
	}

	err = plan.Validate()
	if err != nil {
		return Plan{}, err
	}

	return plan, nil
}

// Validate checks that the plan has at least one invocation and that no two
// invocations target the same profile output path.
func (p Plan) Validate() error {
	if len(p.Invocations) == 0 {
		return fmt.Errorf("%w: no invocations", ErrInvalidPlan)
	}

	seen := make(map[string]int, len(p.Invocations))

	for i, inv := range p.Invocations {
		if inv.Profile == "" {
			return fmt.Errorf("%w: invocation %d has no profile path", ErrInvalidPlan, i+1)
		}

		if prev, ok := seen[inv.Profile]; ok {
			return fmt.Errorf("%w: invocations %d and %d both write %s",
				ErrInvalidPlan, prev+1, i+1, inv.Profile)
		}

		seen[inv.Profile] = i
	}

	return nil
}
