package qsearch

/*
The diffuser is the Grover inversion about the mean, 2|s⟩⟨s| − I over the
uniform superposition |s⟩, restricted to the address register. It is only
valid once the unload pass has disentangled the data register, which the
composer guarantees by ordering.
*/

// diffuse appends the inversion-about-mean block on the address register.
func diffuse(c Circuit, plan RegisterPlan) Circuit {
	if plan.AddrBits == 0 {
		return c
	}

	// Map |s⟩ to |0…0⟩, then flip into the all-ones frame.
	for q := 0; q < plan.AddrBits; q++ {
		c = append(c, Hadamard(q), Flip(q))
	}

	c = controlledPhase(c, addressControls(plan))

	for q := 0; q < plan.AddrBits; q++ {
		c = append(c, Flip(q), Hadamard(q))
	}
	return c
}
