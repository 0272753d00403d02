package qsearch

import "fmt"

// CapacityError reports an address register too narrow to index every
// database entry. It is surfaced by the planner before any gate work begins.
type CapacityError struct {
	Entries  int
	AddrBits int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf(
		"address register of %d qubits holds %d states, cannot index %d database entries",
		e.AddrBits, 1<<e.AddrBits, e.Entries,
	)
}

// DimensionError reports a malformed gate: a qubit index outside the
// simulated register, or an unknown gate kind. It indicates a defect in
// circuit construction rather than bad caller input.
type DimensionError struct {
	GateIndex int
	Qubit     int
	Qubits    int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf(
		"gate %d references qubit %d outside register [0,%d)",
		e.GateIndex, e.Qubit, e.Qubits,
	)
}

// InvariantViolation reports a state vector whose total probability drifted
// from 1 beyond tolerance after a gate was applied. Gates are unitary, so
// this can only mean a broken gate application.
type InvariantViolation struct {
	GateIndex int
	Norm      float64
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf(
		"total probability %.12f after gate %d, state is no longer normalized",
		e.Norm, e.GateIndex,
	)
}
