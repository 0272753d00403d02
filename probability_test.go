package qsearch

import (
	"math/rand/v2"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestProbabilityMap(t *testing.T) {
	Convey("Given the distribution {0.1, 0.7, 0.2}", t, func() {
		pm := ProbabilityMap{0.1, 0.7, 0.2}

		Convey("Sum and Best read off the obvious values", func() {
			So(pm.Sum(), ShouldAlmostEqual, 1.0, normTolerance)
			So(pm.Best(), ShouldEqual, 1)
		})

		Convey("When sampling many measurement shots", func() {
			r := rand.New(rand.NewPCG(1, 2))
			counts := pm.Tally(10000, r)

			Convey("Every shot lands on a valid address", func() {
				total := 0
				for _, c := range counts {
					total += c
				}
				So(total, ShouldEqual, 10000)
			})

			Convey("The dominant address dominates the tally", func() {
				So(counts[1], ShouldBeGreaterThan, counts[0])
				So(counts[1], ShouldBeGreaterThan, counts[2])
			})
		})
	})

	Convey("Given an empty distribution", t, func() {
		pm := ProbabilityMap{}

		Convey("Best and Sample degrade gracefully", func() {
			r := rand.New(rand.NewPCG(3, 4))

			So(pm.Best(), ShouldEqual, -1)
			So(pm.Sample(r), ShouldEqual, -1)
			So(pm.Tally(5, r), ShouldBeEmpty)
		})
	})
}
