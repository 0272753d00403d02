package qsearch

// CircuitMetrics summarizes a built circuit: how many gates of each kind
// it carries and how wide the registers are. Useful for sizing a run
// before committing to the O(2^Q · gates) simulation cost.
type CircuitMetrics struct {
	AddrQubits int
	DataQubits int
	Gates      int

	Flips           int
	ControlledFlips int
	Phases          int
	Hadamards       int

	// Widest control set seen on any controlled flip.
	MaxControls int
}

// MeasureCircuit walks the circuit once and tallies its gates.
func MeasureCircuit(circuit Circuit, plan RegisterPlan) CircuitMetrics {
	m := CircuitMetrics{
		AddrQubits: plan.AddrBits,
		DataQubits: plan.DataBits,
		Gates:      len(circuit),
	}

	for _, g := range circuit {
		switch g.Kind {
		case GateX:
			m.Flips++
		case GateMCX:
			m.ControlledFlips++
			if len(g.Controls) > m.MaxControls {
				m.MaxControls = len(g.Controls)
			}
		case GateZ:
			m.Phases++
		case GateH:
			m.Hadamards++
		}
	}
	return m
}

// Export returns the metrics as a flat map for logging or display.
func (m CircuitMetrics) Export() map[string]interface{} {
	return map[string]interface{}{
		"addr_qubits":      m.AddrQubits,
		"data_qubits":      m.DataQubits,
		"gates":            m.Gates,
		"flips":            m.Flips,
		"controlled_flips": m.ControlledFlips,
		"phases":           m.Phases,
		"hadamards":        m.Hadamards,
		"max_controls":     m.MaxControls,
	}
}
