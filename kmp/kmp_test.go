package kmp

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestKMP(t *testing.T) {
	Convey("Given the pattern AABAACAABAA", t, func() {
		Convey("The LPS table matches the classic worked example", func() {
			So(LPS("AABAACAABAA"), ShouldResemble, []int{0, 1, 0, 1, 2, 0, 1, 2, 3, 4, 5})
		})
	})

	Convey("Given a DNA text", t, func() {
		text := "ACGTACGTACGT"

		Convey("Every occurrence is found", func() {
			So(Search("ACGT", text), ShouldResemble, []int{0, 4, 8})
		})

		Convey("A missing pattern matches nowhere", func() {
			So(Search("TTT", text), ShouldBeNil)
		})

		Convey("Overlapping occurrences are all reported", func() {
			So(Search("AA", "AAAA"), ShouldResemble, []int{0, 1, 2})
		})
	})

	Convey("Given degenerate inputs", t, func() {
		So(Search("", "ACGT"), ShouldBeNil)
		So(Search("ACGT", ""), ShouldBeNil)
		So(LPS(""), ShouldResemble, []int{})
	})
}
