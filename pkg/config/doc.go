// Package config loads parabolic configuration and runs grid generator
// scripts.
//
// # Configuration files
//
// A configuration file is YAML (.yaml, .yml) or CUE (.cue, .json). Both
// forms describe the same document and are laid over Default(), so a file
// only needs the settings it changes:
//
//	input:
//	  path: input.txt
//	  dimension: 100      # 0 = infer from the first line
//	  strict: false
//	simulation:
//	  target_cycles: 1000000000
//	  max_cycles: 100000
//	  strategy: scan      # scan | settle
//	telemetry:
//	  logging: {level: info, format: console, output: stderr}
//	  tracing: {enabled: false, exporter: none}
//	  metrics: {enabled: false, listen_address: ":9090", path: /metrics}
//
// CUE files are unified with the built-in #Config definition, which is
// closed: unknown fields are errors. YAML files are decoded with unknown
// fields rejected. Either way the result is checked with validator struct
// tags and against #Config before it is returned. Failures are reported
// as engine.ErrInvalidConfig.
//
// # Usage Example
//
//	cfg, err := config.Load("parabolic.yaml")
//	if err != nil {
//	    return err
//	}
//	sim, err := engine.NewSimulator(cfg.SimulationOptions())
//
// # Generator scripts
//
// StarlarkGenerator runs a Starlark script that defines generate(size) and
// returns a list of size row strings:
//
//	def generate(size):
//	    rows = []
//	    for r in range(size):
//	        rows.append("".join(["O" if (r * size + c) % 7 == 0 else "." for c in range(size)]))
//	    return rows
//
// Scripts see struct (starlarkstruct) and size as globals. print output
// is discarded. Execution is cancelled after the generator's timeout.
package config
