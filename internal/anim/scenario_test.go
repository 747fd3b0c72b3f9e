package anim

import (
	"context"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/metaballs/internal/config"
	"github.com/san-kum/metaballs/internal/field"
	"github.com/san-kum/metaballs/internal/raster"
)

var _ = Describe("Loop", func() {
	var (
		cfg   *config.Config
		sink  *recordSink
		clock *stepClock
		loop  *Loop
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Width, cfg.Height = 10, 5
		cfg.Glyph = "#"
		cfg.Balls = 1
		sink = newRecordSink()
		clock = &stepClock{now: time.Unix(0, 0)}

		var err error
		loop, err = New(cfg, sink, clock, rand.New(rand.NewSource(11)))
		Expect(err).NotTo(HaveOccurred())
	})

	Context("with one resting ball of radius 2 at (5,2)", func() {
		BeforeEach(func() {
			loop.SetBalls(field.Balls{{Radius: 2, X: 5, Y: 2}})
			Expect(loop.Init()).To(Succeed())
		})

		It("draws the contour band and nothing inside it", func() {
			Expect(loop.Step()).To(Succeed())
			Expect(sink.frames).To(HaveLen(1))
			Expect(sink.frames[0]).To(Equal([]string{
				"   ####   ",
				"  ##  ##  ",
				"  ##  ##  ",
				"   ####   ",
				"    ##    ",
			}))
		})

		It("renders the same frame forever", func() {
			for i := 0; i < 5; i++ {
				Expect(loop.Step()).To(Succeed())
			}
			for _, frame := range sink.frames[1:] {
				Expect(frame).To(Equal(sink.frames[0]))
			}
			Expect(loop.Balls()[0]).To(Equal(field.Ball{Radius: 2, X: 5, Y: 2}))
		})
	})

	Context("with randomized balls", func() {
		BeforeEach(func() {
			cfg.Width, cfg.Height = 60, 20
			cfg.Balls = 4
			Expect(loop.Init()).To(Succeed())
		})

		It("spawns the configured number of balls inside the grid", func() {
			Expect(loop.Balls()).To(HaveLen(4))
			for _, b := range loop.Balls() {
				Expect(b.Overshoot(60, 20)).To(BeNumerically("<", 1e-9))
			}
		})

		It("writes one row per grid line per frame", func() {
			for i := 0; i < 10; i++ {
				Expect(loop.Step()).To(Succeed())
			}
			Expect(sink.frames).To(HaveLen(10))
			for _, frame := range sink.frames {
				Expect(frame).To(HaveLen(20))
				for _, row := range frame {
					Expect(row).To(HaveLen(60))
					Expect(row).To(MatchRegexp(`^[# ]*$`))
				}
			}
		})

		It("never releases a frame early", func() {
			start := clock.now
			for n := 0; n < 12; n++ {
				Expect(loop.Step()).To(Succeed())
				elapsed := clock.now.Sub(start)
				Expect(float64(elapsed)).To(BeNumerically(">=", float64(n)*float64(time.Second)/24))
			}
		})

		It("reports frames to observers until cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			var frames []int
			loop.AddObserver(observerFunc(func(frame int, _ field.Balls, grid *raster.Grid) {
				Expect(grid.Width).To(Equal(60))
				frames = append(frames, frame)
				if frame == 4 {
					cancel()
				}
			}))

			Expect(loop.Run(ctx)).To(Succeed())
			Expect(frames).To(Equal([]int{0, 1, 2, 3, 4}))
		})
	})
})
