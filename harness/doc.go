// Package harness defines the data model shared by the reference oracles of
// the kernel test harness.
//
// A test case is described by its Arguments (named, typed stimuli), the
// Parameter receiving the kernel's output, and an Env holding the values of
// the sweep variables for that case. An Oracle turns those into the expected
// output Vector. Oracles register themselves by kernel name so that sweep
// drivers can look them up.
package harness
