package qsearch

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHistogram(t *testing.T) {
	Convey("Given the distribution {0.1, 0.7, 0.2}", t, func() {
		pm := ProbabilityMap{0.1, 0.7, 0.2}
		h := NewHistogram()

		Convey("When rendering probabilities", func() {
			out := h.Render(pm)

			Convey("One line per address, probabilities printed", func() {
				So(strings.Count(out, "\n"), ShouldEqual, 3)
				So(out, ShouldContainSubstring, "addr   0")
				So(out, ShouldContainSubstring, "0.7000")
				So(out, ShouldContainSubstring, "0.1000")
			})

			Convey("The dominant address fills the full width", func() {
				So(out, ShouldContainSubstring, strings.Repeat("█", h.Width))
			})
		})

		Convey("When rendering shot counts", func() {
			out := h.RenderCounts([]int{1, 12, 3})

			So(strings.Count(out, "\n"), ShouldEqual, 3)
			So(out, ShouldContainSubstring, " 12")
		})
	})

	Convey("Given an empty distribution", t, func() {
		h := NewHistogram()

		So(h.Render(nil), ShouldEqual, "")
		So(h.RenderCounts(nil), ShouldEqual, "")
	})
}
