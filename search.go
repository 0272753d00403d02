package qsearch

import (
	"fmt"

	"github.com/theapemachine/errnie"
)

/*
Search binds one database and target value to a register plan and runs the
whole pipeline: build the circuit, simulate it exactly, hand back the
address distribution. The database is treated as immutable for the life of
the search; plan, circuit and results all derive from the values captured
here.
*/
type Search struct {
	database []int
	target   int
	plan     RegisterPlan
}

// NewSearch plans the registers for the database and returns a runnable
// search, or the planner's CapacityError.
func NewSearch(database []int, target int, opts ...PlanOption) (*Search, error) {
	plan, err := Plan(database, target, opts...)
	if err != nil {
		return nil, err
	}
	return &Search{database: database, target: target, plan: plan}, nil
}

// Plan returns the register plan fixed at construction.
func (s *Search) Plan() RegisterPlan {
	return s.plan
}

// Circuit builds the gate sequence for this search. Deterministic: every
// call returns an equal circuit.
func (s *Search) Circuit() Circuit {
	return BuildCircuit(s.database, s.target, s.plan)
}

// Run builds and simulates the circuit, returning the address marginal.
// An empty database has no addresses to amplify and yields an empty map.
func (s *Search) Run() (ProbabilityMap, error) {
	if len(s.database) == 0 {
		errnie.Info("grover search - empty database, nothing to search")
		return ProbabilityMap{}, nil
	}
	return Simulate(s.Circuit(), s.plan)
}

/*
Result describes one address outcome for presentation: the address, its
binary form at the plan's width, the stored value when the address is
populated, and whether that value matches the target.
*/
type Result struct {
	Address     int
	Bits        string
	Value       int
	Populated   bool
	Probability float64
	Match       bool
}

// Results pairs a probability map with the database for display. Addresses
// beyond the database length exist in the register but hold no entry.
func (s *Search) Results(probs ProbabilityMap) []Result {
	results := make([]Result, len(probs))
	for address, p := range probs {
		r := Result{
			Address:     address,
			Bits:        fmt.Sprintf("%0*b", s.plan.AddrBits, address),
			Probability: p,
		}
		if address < len(s.database) {
			r.Value = s.database[address]
			r.Populated = true
			r.Match = r.Value == s.target
		}
		results[address] = r
	}
	return results
}
