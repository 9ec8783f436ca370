// Package lvdata draws random integer datasets under constraints and
// describes them with the statistics taught alongside box plots.
//
// 🚀 What is lvdata?
//
//	A small, deterministic-when-seeded toolkit that brings together:
//		• Synthesis: value count, range, exact mode count, uniqueness,
//		  prime exclusion, common-factor datasets
//		• Statistics: mean, median, quartiles, range, modes, GCD, LCM
//		• Box plots: grid range + five-number summary
//		• Presets: named requests in YAML or TOML
//		• Service: HTTP API with Prometheus metrics
//		• CLI: lvdata generate | stats | boxplot | serve | presets
//
// Under the hood:
//
//	dataset/    - immutable sorted dataset + statistics, prime/GCD/LCM helpers
//	synth/      - Config, options, Builder and the rejection sampler
//	boxplot/    - box-plot data model over literal or synthesized values
//	preset/     - preset catalogs (yaml.v3, BurntSushi/toml)
//	service/    - HTTP handlers, metrics, request/response types
//	cmd/lvdata/ - cobra + viper command line
//
// Quick example:
//
//	ds, err := synth.NewBuilder().
//		ValueCount(9).
//		ValueRange(1, 40).
//		ModeCount(1).
//		Seed(42).
//		Generate(ctx)
//
//	q1, _ := ds.FirstQuartile()
//
//	go install github.com/katalvlaran/lvdata/cmd/lvdata@latest
package lvdata
