package qsearch

/*
The composer glues the units into one ordered sequence:

	H on every address qubit   (uniform superposition over addresses)
	QRAM load, ascending       (bind each address to its stored value)
	oracle                     (−1 phase where data == target)
	QRAM unload, descending    (disentangle the data register)
	diffuser                   (amplify the marked addresses)

One Grover iteration, as the search was designed; callers wanting the
O(√N)-iteration generalization repeat the oracle-through-diffuser span
themselves.
*/

// BuildCircuit assembles the full gate sequence for one search. It is a
// pure function of its inputs; building the same search twice yields the
// same circuit.
func BuildCircuit(database []int, target int, plan RegisterPlan) Circuit {
	gates := make(Circuit, 0, plan.AddrBits)

	for q := 0; q < plan.AddrBits; q++ {
		gates = append(gates, Hadamard(q))
	}

	gates = qramLoad(gates, plan, database)
	gates = oracle(gates, plan, target)
	gates = qramUnload(gates, plan, database)
	return diffuse(gates, plan)
}
