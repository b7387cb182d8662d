package main

import "github.com/spatialepi/diseasemap/sample"

// RunSummary is storing diseasemap run summary information.
type RunSummary struct {
	// Version stores diseasemap version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Seed is the seed used for random number generation initialization.
	Seed int64 `json:"seed"`
	// Model is the model summary.
	Model interface{} `json:"model,omitempty"`
	// Sampler is the sampler run summary (single-chain and MAP runs).
	Sampler *sample.Summary `json:"sampler,omitempty"`
	// Chains is the number of chains run.
	Chains int `json:"chains,omitempty"`
	// Draws is the number of pooled posterior draws.
	Draws int `json:"draws,omitempty"`
	// Posterior stores per-parameter posterior summaries.
	Posterior []sample.VariableSummary `json:"posterior,omitempty"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}
