// Package query filters close approaches by date, distance, velocity,
// diameter, and hazard marking.
//
// A [Config] carries the CLI flag values and registers flags via
// [github.com/spf13/pflag] with shell completion support via
// [github.com/spf13/cobra]. [Config.NewFilter] compiles the values into a
// [Filter], validating dates and flag combinations:
//
//	cfg := query.NewConfig()
//	cfg.RegisterFlags(cmd.Flags())
//
//	filter, err := cfg.NewFilter()
//	results := filter.Select(db.Approaches())
//
// All provided criteria combine conjunctively: an approach is selected only
// when it matches every one. Criteria on object attributes (diameter, hazard
// marking) never match approaches whose object is unknown, and a diameter
// bound never matches an object whose diameter is unknown.
package query
