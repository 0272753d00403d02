package qsearch

/*
The oracle applies a −1 phase to every basis state whose data register
equals the target value. It must sit strictly between the QRAM load and
unload passes: only there does the data register actually carry the value
bound to each address.
*/

// oracle appends the phase-flip block marking data == target.
func oracle(c Circuit, plan RegisterPlan, target int) Circuit {
	if plan.DataBits == 0 {
		// A zero-width data register carries no value to mark.
		return c
	}

	bracket := func(c Circuit) Circuit {
		for k := 0; k < plan.DataBits; k++ {
			if target&(1<<k) == 0 {
				c = append(c, Flip(plan.AddrBits+k))
			}
		}
		return c
	}

	data := make([]int, plan.DataBits)
	for k := range data {
		data[k] = plan.AddrBits + k
	}

	c = bracket(c)
	c = controlledPhase(c, data)
	return bracket(c)
}

// controlledPhase appends a sign flip on the all-ones subspace of qubits.
// One qubit degenerates to a plain phase gate; otherwise the flip is a
// Hadamard sandwich around a multi-controlled bit flip on the last qubit.
func controlledPhase(c Circuit, qubits []int) Circuit {
	switch len(qubits) {
	case 0:
		return c
	case 1:
		return append(c, Phase(qubits[0]))
	default:
		target := qubits[len(qubits)-1]
		controls := qubits[:len(qubits)-1]
		c = append(c, Hadamard(target))
		c = append(c, ControlledFlip(controls, target))
		return append(c, Hadamard(target))
	}
}
