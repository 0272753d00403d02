package qsearch

/*
The encoding unit realizes the QRAM write: for each database entry, a gate
block that flips the data qubits of the stored value exactly when the
address register holds that entry's address, and leaves every other branch
of the superposition alone.

Each block brackets its controlled flips with plain flips on the address
qubits whose address bit is 0, so the all-ones pattern on the address
register uniquely selects the entry. The block is its own inverse, which is
what makes the unload pass below exact.
*/

// addressControls returns the full address register as a control set.
func addressControls(plan RegisterPlan) []int {
	controls := make([]int, plan.AddrBits)
	for i := range controls {
		controls[i] = i
	}
	return controls
}

// encodeEntry appends the write block for one (address, value) pair.
func encodeEntry(c Circuit, plan RegisterPlan, address, value int) Circuit {
	controls := addressControls(plan)

	bracket := func(c Circuit) Circuit {
		for q := 0; q < plan.AddrBits; q++ {
			if address&(1<<q) == 0 {
				c = append(c, Flip(q))
			}
		}
		return c
	}

	c = bracket(c)
	for k := 0; k < plan.DataBits; k++ {
		if value&(1<<k) != 0 {
			c = append(c, ControlledFlip(controls, plan.AddrBits+k))
		}
	}
	return bracket(c)
}

// qramLoad appends the write blocks for every entry, address ascending.
func qramLoad(c Circuit, plan RegisterPlan, database []int) Circuit {
	for address, value := range database {
		c = encodeEntry(c, plan, address, value)
	}
	return c
}

// qramUnload appends the inverse of qramLoad: the same self-inverse blocks
// in reverse entry order, returning the data register to |0…0⟩.
func qramUnload(c Circuit, plan RegisterPlan, database []int) Circuit {
	for address := len(database) - 1; address >= 0; address-- {
		c = encodeEntry(c, plan, address, database[address])
	}
	return c
}
