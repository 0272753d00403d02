package qsearch

// GateKind tags the primitive reversible operations the simulator knows
// how to apply exactly.
type GateKind int

const (
	// GateX flips the target qubit.
	GateX GateKind = iota
	// GateMCX flips the target qubit when every control qubit reads 1.
	GateMCX
	// GateZ negates the amplitude of states where the target qubit is 1.
	GateZ
	// GateH is the Hadamard basis change on the target qubit.
	GateH
)

/*
Gate is one primitive reversible operation: a kind, the qubit it acts on,
and for controlled flips the set of qubits gating it. Gates are immutable
values; building blocks append them to a Circuit and never touch them again.
*/
type Gate struct {
	Kind     GateKind
	Controls []int
	Target   int
}

// Flip returns an unconditional bit flip on target.
func Flip(target int) Gate {
	return Gate{Kind: GateX, Target: target}
}

// ControlledFlip returns a bit flip on target gated on every control
// qubit reading 1. The control set is copied so callers may reuse theirs.
func ControlledFlip(controls []int, target int) Gate {
	owned := make([]int, len(controls))
	copy(owned, controls)
	return Gate{Kind: GateMCX, Controls: owned, Target: target}
}

// Phase returns a sign flip on the target qubit's |1⟩ amplitudes.
func Phase(target int) Gate {
	return Gate{Kind: GateZ, Target: target}
}

// Hadamard returns the basis change on target.
func Hadamard(target int) Gate {
	return Gate{Kind: GateH, Target: target}
}

// validate checks every referenced qubit against the register width and
// rejects unknown kinds. gateIndex is only used to report where the
// malformed gate sits in its circuit.
func (g Gate) validate(gateIndex, qubits int) error {
	switch g.Kind {
	case GateX, GateMCX, GateZ, GateH:
	default:
		return &DimensionError{GateIndex: gateIndex, Qubit: g.Target, Qubits: qubits}
	}
	if g.Target < 0 || g.Target >= qubits {
		return &DimensionError{GateIndex: gateIndex, Qubit: g.Target, Qubits: qubits}
	}
	for _, c := range g.Controls {
		if c < 0 || c >= qubits {
			return &DimensionError{GateIndex: gateIndex, Qubit: c, Qubits: qubits}
		}
	}
	return nil
}

/*
Circuit is the ordered gate sequence produced by the composer. It is a
plain value with no framework context behind it; the simulator walks it
front to back and nothing else interprets it.
*/
type Circuit []Gate
