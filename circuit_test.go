package qsearch

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildCircuit(t *testing.T) {
	Convey("Given the database [1,2,3,0] and target 3", t, func() {
		db := []int{1, 2, 3, 0}
		plan, err := Plan(db, 3)
		So(err, ShouldBeNil)

		circuit := BuildCircuit(db, 3, plan)

		Convey("Assembly is deterministic", func() {
			So(BuildCircuit(db, 3, plan), ShouldResemble, circuit)
		})

		Convey("It opens with a Hadamard on every address qubit", func() {
			So(circuit[0], ShouldResemble, Hadamard(0))
			So(circuit[1], ShouldResemble, Hadamard(1))
		})

		Convey("Every gate stays inside the planned register", func() {
			for i, g := range circuit {
				So(g.validate(i, plan.TotalQubits()), ShouldBeNil)
			}
		})

		Convey("Unload replays the write blocks in reverse entry order", func() {
			unload := qramUnload(nil, plan, db)

			var expected Circuit
			for address := len(db) - 1; address >= 0; address-- {
				expected = encodeEntry(expected, plan, address, db[address])
			}
			So(unload, ShouldResemble, expected)
		})
	})

	Convey("Given a zero-width address register", t, func() {
		db := []int{3}
		plan, err := Plan(db, 3)
		So(err, ShouldBeNil)

		circuit := BuildCircuit(db, 3, plan)

		Convey("No Hadamard or diffusion gates touch the address space", func() {
			for _, g := range circuit {
				So(g.Target, ShouldBeGreaterThanOrEqualTo, plan.AddrBits)
			}
		})
	})
}
