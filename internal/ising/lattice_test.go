package ising_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/isingsim/internal/ising"
)

func dist2(c ising.Coord, n int) int {
	center := n / 2
	dx, dy, dz := c[0]-center, c[1]-center, c[2]-center
	return dx*dx + dy*dy + dz*dz
}

var _ = Describe("Lattice", func() {
	Describe("construction", func() {
		It("fills every cell of a 2D grid with ±1", func() {
			l, err := ising.New(8, ising.FullGrid{D: 2}, ising.NewSource(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(l.Len()).To(Equal(64))
			for k := 0; k < l.Len(); k++ {
				Expect(l.Spin(l.Site(k))).To(BeElementOf(ising.Down, ising.Up))
			}
		})

		It("is deterministic for a fixed seed", func() {
			a, err := ising.New(16, ising.FullGrid{D: 2}, ising.NewSource(99))
			Expect(err).NotTo(HaveOccurred())
			b, err := ising.New(16, ising.FullGrid{D: 2}, ising.NewSource(99))
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Snapshot(0).Spins()).To(Equal(b.Snapshot(0).Spins()))
		})

		DescribeTable("rejects invalid parameters",
			func(n int, mask ising.Mask, field string) {
				_, err := ising.New(n, mask, ising.NewSource(1))
				Expect(errors.Is(err, ising.ErrInvalidParameter)).To(BeTrue())
				var pe *ising.ParameterError
				Expect(errors.As(err, &pe)).To(BeTrue())
				Expect(pe.Field).To(Equal(field))
			},
			Entry("zero size", 0, ising.FullGrid{D: 2}, "size"),
			Entry("negative size", -4, ising.FullGrid{D: 2}, "size"),
			Entry("unsupported dimension", 4, ising.FullGrid{D: 4}, "dim"),
			Entry("radius at half size", 10, ising.Shell{Radius: 5}, "radius"),
			Entry("radius beyond half size", 10, ising.Shell{Radius: 7}, "radius"),
			Entry("zero radius", 10, ising.Shell{Radius: 0}, "radius"),
			Entry("missing mask", 10, nil, "boundary"),
		)
	})

	Describe("neighbors", func() {
		var l *ising.Lattice

		BeforeEach(func() {
			var err error
			l, err = ising.New(4, ising.FullGrid{D: 2}, ising.NewSource(3))
			Expect(err).NotTo(HaveOccurred())
			for k := 0; k < l.Len(); k++ {
				l.Set(l.Site(k), ising.Up)
			}
		})

		It("returns four values in 2D", func() {
			Expect(l.Neighbors(ising.Coord{1, 1}, nil)).To(HaveLen(4))
		})

		It("wraps around the edges", func() {
			l.Set(ising.Coord{3, 0}, ising.Down)
			l.Set(ising.Coord{0, 3}, ising.Down)
			Expect(l.Neighbors(ising.Coord{0, 0}, nil)).To(Equal([]int8{1, -1, 1, -1}))
			Expect(l.NeighborSum(ising.Coord{0, 0})).To(Equal(0))
		})

		It("returns six values on the cube", func() {
			cube, err := ising.New(5, ising.FullGrid{D: 3}, ising.NewSource(3))
			Expect(err).NotTo(HaveOccurred())
			Expect(cube.Neighbors(ising.Coord{0, 4, 2}, nil)).To(HaveLen(6))
		})
	})

	Describe("shell", func() {
		const n, r = 10, 3
		var l *ising.Lattice

		BeforeEach(func() {
			var err error
			l, err = ising.New(n, ising.Shell{Radius: r}, ising.NewSource(7))
			Expect(err).NotTo(HaveOccurred())
		})

		It("only holds sites in the outer band", func() {
			Expect(l.Len()).To(BeNumerically(">", 0))
			for k := 0; k < l.Len(); k++ {
				d := dist2(l.Site(k), n)
				Expect(d).To(BeNumerically(">", 4))
				Expect(d).To(BeNumerically("<=", 9))
			}
		})

		It("contains every cell of the band", func() {
			count := 0
			for x := 0; x < n; x++ {
				for y := 0; y < n; y++ {
					for z := 0; z < n; z++ {
						d := dist2(ising.Coord{x, y, z}, n)
						if d > 4 && d <= 9 {
							count++
						}
					}
				}
			}
			Expect(l.Len()).To(Equal(count))
		})

		It("populates the interior and leaves the outside empty", func() {
			Expect(l.Spin(ising.Coord{5, 5, 5})).To(BeElementOf(ising.Down, ising.Up))
			Expect(l.Spin(ising.Coord{0, 0, 0})).To(Equal(int8(0)))
		})

		It("draws random sites from the band only", func() {
			for i := 0; i < 500; i++ {
				c := l.RandomSite()
				Expect(l.Eligible(c)).To(BeTrue())
			}
		})
	})

	Describe("snapshots", func() {
		It("do not follow later mutation", func() {
			l, err := ising.New(6, ising.FullGrid{D: 2}, ising.NewSource(5))
			Expect(err).NotTo(HaveOccurred())

			c := ising.Coord{2, 3}
			before := l.Spin(c)
			snap := l.Snapshot(4)
			l.Flip(c)

			Expect(snap.Step()).To(Equal(4))
			Expect(snap.Spin(c)).To(Equal(before))
			Expect(l.Spin(c)).To(Equal(-before))
		})

		It("hand out copies of their spins", func() {
			l, err := ising.New(4, ising.FullGrid{D: 2}, ising.NewSource(5))
			Expect(err).NotTo(HaveOccurred())
			snap := l.Snapshot(0)

			spins := snap.Spins()
			spins[0] = 0
			rows := snap.Rows()
			rows[1][1] = 0

			Expect(snap.Spin(ising.Coord{0, 0})).NotTo(BeZero())
			Expect(snap.Spin(ising.Coord{1, 1})).NotTo(BeZero())
			Expect(rows).To(HaveLen(4))
		})

		It("have no rows in 3D", func() {
			l, err := ising.New(10, ising.Shell{Radius: 2}, ising.NewSource(5))
			Expect(err).NotTo(HaveOccurred())
			snap := l.Snapshot(0)
			Expect(snap.Rows()).To(BeNil())
			Expect(snap.Sites()).To(HaveLen(l.Len()))
		})
	})

	It("keeps spins at ±1 under repeated flips", func() {
		l, err := ising.New(5, ising.FullGrid{D: 2}, ising.NewSource(11))
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < 1000; i++ {
			l.Flip(l.RandomSite())
		}
		for k := 0; k < l.Len(); k++ {
			Expect(l.Spin(l.Site(k))).To(BeElementOf(ising.Down, ising.Up))
		}
	})
})
