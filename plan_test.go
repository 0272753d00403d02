package qsearch

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPlan(t *testing.T) {
	Convey("Given the database [1,2,3,0]", t, func() {
		db := []int{1, 2, 3, 0}

		Convey("When planning without overrides", func() {
			plan, err := Plan(db, 3)

			So(err, ShouldBeNil)
			So(plan.AddrBits, ShouldEqual, 2)
			So(plan.DataBits, ShouldEqual, 2)
			So(plan.TotalQubits(), ShouldEqual, 4)
			So(plan.Addresses(), ShouldEqual, 4)
		})

		Convey("When overriding the register widths", func() {
			plan, err := Plan(db, 3, WithAddressBits(3), WithDataBits(5))

			So(err, ShouldBeNil)
			So(plan.AddrBits, ShouldEqual, 3)
			So(plan.DataBits, ShouldEqual, 5)
		})

		Convey("When the override cannot address every entry", func() {
			_, err := Plan(db, 3, WithAddressBits(1))

			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &CapacityError{})
		})
	})

	Convey("Given databases of varying size", t, func() {
		Convey("The address register always covers the entries", func() {
			for n := 1; n <= 16; n++ {
				db := make([]int, n)
				plan, err := Plan(db, 0)

				So(err, ShouldBeNil)
				So(plan.Addresses(), ShouldBeGreaterThanOrEqualTo, n)
			}
		})

		Convey("A five-entry database needs three address qubits", func() {
			plan, err := Plan([]int{9, 0, 0, 0, 0}, 9)

			So(err, ShouldBeNil)
			So(plan.AddrBits, ShouldEqual, 3)
			So(plan.DataBits, ShouldEqual, 4)
		})
	})

	Convey("Given a single-entry database holding zero", t, func() {
		plan, err := Plan([]int{0}, 0)

		Convey("Both registers collapse to zero width", func() {
			So(err, ShouldBeNil)
			So(plan.AddrBits, ShouldEqual, 0)
			So(plan.DataBits, ShouldEqual, 0)
			So(plan.Addresses(), ShouldEqual, 1)
		})
	})
}
