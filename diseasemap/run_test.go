package main

import "testing"

func TestCheckSamplingFlags(tst *testing.T) {
	if err := checkSamplingFlags(1000, 200, 1, 200); err != nil {
		tst.Error("Error: ", err)
	}
	if err := checkSamplingFlags(1000, 1000, 1, 200); err == nil {
		tst.Error("Expected error for burn-in >= iterations")
	}
	if err := checkSamplingFlags(1000, 200, 0, 200); err == nil {
		tst.Error("Expected error for zero thinning period")
	}
	if err := checkSamplingFlags(1000, 200, 1, 0); err == nil {
		tst.Error("Expected error for zero acceptance-rate period")
	}
	if err := checkSamplingFlags(0, -1, 1, 200); err == nil {
		tst.Error("Expected error for zero iterations")
	}
}
