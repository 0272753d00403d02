package qsearch

import (
	"math/bits"

	"github.com/theapemachine/errnie"
)

/*
RegisterPlan fixes the register widths for one search instance. Address
qubits occupy indices [0, AddrBits) of the combined register, data qubits
occupy [AddrBits, AddrBits+DataBits); the convention holds for every gate
in a circuit built against this plan.
*/
type RegisterPlan struct {
	AddrBits int
	DataBits int
}

// TotalQubits returns the combined register width.
func (p RegisterPlan) TotalQubits() int {
	return p.AddrBits + p.DataBits
}

// Addresses returns the number of distinct address states, 2^AddrBits.
func (p RegisterPlan) Addresses() int {
	return 1 << p.AddrBits
}

// PlanOption is a function type for overriding derived register widths
type PlanOption func(*RegisterPlan)

// WithAddressBits overrides the derived address register width.
func WithAddressBits(n int) PlanOption {
	return func(p *RegisterPlan) {
		p.AddrBits = n
	}
}

// WithDataBits overrides the derived data register width.
func WithDataBits(n int) PlanOption {
	return func(p *RegisterPlan) {
		p.DataBits = n
	}
}

// bitsFor returns the register width needed to hold values 0..n-1,
// i.e. ceil(log2(n)). A single value needs no qubits at all.
func bitsFor(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

/*
Plan derives register widths from the database: enough address qubits to
index every entry and enough data qubits to hold the largest stored value.
The target does not influence the widths; it is what the oracle later marks
inside the data register. Overrides replace the derived widths, and a
CapacityError is returned when the resulting address register cannot index
every entry.
*/
func Plan(database []int, target int, opts ...PlanOption) (RegisterPlan, error) {
	maxValue := 0
	for _, v := range database {
		if v > maxValue {
			maxValue = v
		}
	}

	plan := RegisterPlan{
		AddrBits: bitsFor(len(database)),
		DataBits: bitsFor(maxValue + 1),
	}
	for _, opt := range opts {
		opt(&plan)
	}

	if 1<<plan.AddrBits < len(database) {
		return RegisterPlan{}, &CapacityError{
			Entries:  len(database),
			AddrBits: plan.AddrBits,
		}
	}

	errnie.Info(
		"register plan - %d entries, target %d, %d address + %d data qubits",
		len(database), target, plan.AddrBits, plan.DataBits,
	)
	return plan, nil
}
