// Package harness provides conformance testing for the pair calculator.
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	steps:
//	  - x: 5
//	    y: 3
//	    expect:
//	      sum: 8
//	  - x: -1
//	    y: 3
//	    expect:
//	      error: "Both values must be positive"
//
// Each step invokes the calculator and validates the outcome against the
// expect clause: a sum for the success branch, an error message for the
// domain-error branch. The harness also checks the calculator's printed
// side effect (exactly "Result: {sum}" on success, nothing on error).
//
// Every scenario runs against a fresh in-memory trace recorder. The run
// token is the scenario name and step events use a deterministic logical
// sequence, so traces compare byte-for-byte against golden files.
package harness
