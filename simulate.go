package qsearch

import (
	"math"
	"math/cmplx"
)

// normTolerance bounds how far total probability may drift from 1 before
// the run is declared defective. Unitary gates applied exactly keep the
// drift at rounding-error scale, orders of magnitude below this.
const normTolerance = 1e-9

/*
StateVector holds the exact complex amplitudes of the combined register,
one per basis index. Qubit q owns bit 1<<q of the index. A vector belongs
to a single simulation run; it starts at |0…0⟩ and is mutated in place by
every gate until the marginal is read off.
*/
type StateVector struct {
	amps   []complex128
	qubits int
}

// newStateVector allocates the 2^qubits vector in the |0…0⟩ basis state.
func newStateVector(qubits int) *StateVector {
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	return &StateVector{amps: amps, qubits: qubits}
}

// apply performs one gate as an exact linear transformation of the vector.
func (s *StateVector) apply(g Gate) {
	switch g.Kind {
	case GateX:
		s.applyFlip(0, g.Target)
	case GateMCX:
		var mask int
		for _, c := range g.Controls {
			mask |= 1 << c
		}
		s.applyFlip(mask, g.Target)
	case GateZ:
		s.applyPhase(g.Target)
	case GateH:
		s.applyHadamard(g.Target)
	}
}

// applyFlip swaps amplitude pairs differing in the target bit, restricted
// to indices where every control bit is set. A zero mask is a plain flip.
func (s *StateVector) applyFlip(controlMask, target int) {
	bit := 1 << target
	for i := range s.amps {
		if i&bit == 0 && i&controlMask == controlMask {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// applyPhase negates amplitudes of indices with the target bit set.
func (s *StateVector) applyPhase(target int) {
	bit := 1 << target
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
}

// applyHadamard mixes amplitude pairs differing in the target bit with
// coefficients ±1/√2.
func (s *StateVector) applyHadamard(target int) {
	factor := complex(1/math.Sqrt2, 0)
	bit := 1 << target
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amps[i], s.amps[j]
			s.amps[i] = factor * (a + b)
			s.amps[j] = factor * (a - b)
		}
	}
}

// norm returns the total probability carried by the vector.
func (s *StateVector) norm() float64 {
	total := 0.0
	for _, amplitude := range s.amps {
		p := cmplx.Abs(amplitude)
		total += p * p
	}
	return total
}

// addressMarginal sums squared magnitudes over every basis index sharing
// an address slice, collapsing the data register out of the distribution.
func (s *StateVector) addressMarginal(plan RegisterPlan) ProbabilityMap {
	probs := make(ProbabilityMap, plan.Addresses())
	addrMask := plan.Addresses() - 1
	for i, amplitude := range s.amps {
		p := cmplx.Abs(amplitude)
		probs[i&addrMask] += p * p
	}
	return probs
}

// run validates and applies every gate in order, checking the unit-norm
// invariant after each one so a non-unitary defect is pinned to the first
// offending gate.
func (s *StateVector) run(circuit Circuit) error {
	for i, g := range circuit {
		if err := g.validate(i, s.qubits); err != nil {
			return err
		}
	}
	for i, g := range circuit {
		s.apply(g)
		if norm := s.norm(); math.Abs(norm-1) > normTolerance {
			return &InvariantViolation{GateIndex: i, Norm: norm}
		}
	}
	return nil
}

/*
Simulate runs the circuit against a fresh |0…0⟩ state of the plan's width
and returns the marginal probability of each address-register value. The
vector is discarded once the marginal is extracted.
*/
func Simulate(circuit Circuit, plan RegisterPlan) (ProbabilityMap, error) {
	state := newStateVector(plan.TotalQubits())
	if err := state.run(circuit); err != nil {
		return nil, err
	}
	return state.addressMarginal(plan), nil
}
