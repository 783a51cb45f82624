package playback_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/registry"
)

var _ = Describe("Driver", func() {
	var d *playback.Driver

	BeforeEach(func() {
		d = playback.New(registry.New())
	})

	It("is idle until started", func() {
		Expect(d.IsActive()).To(BeFalse())
		_, ok := d.Advance()
		Expect(ok).To(BeFalse())
		_, ok = d.Current()
		Expect(ok).To(BeFalse())
		Expect(d.StepCount()).To(Equal(0))
	})

	It("rejects unknown algorithms", func() {
		err := d.Start("bogo_sort", []int{1}, registry.Options{})
		Expect(err).To(MatchError(registry.ErrUnknownAlgorithm))
		Expect(d.IsActive()).To(BeFalse())
	})

	It("rejects a second start while a run is active", func() {
		Expect(d.Start("bubble_sort", []int{2, 1}, registry.Options{})).To(Succeed())
		err := d.Start("merge_sort", []int{2, 1}, registry.Options{})
		Expect(err).To(MatchError(playback.ErrRunActive))
		Expect(d.Algorithm()).To(Equal("bubble_sort"))
	})

	It("drives bubble sort to the terminal step and retains it", func() {
		arr := []int{5, 1, 4, 2, 8}
		Expect(d.Start("bubble_sort", arr, registry.Options{})).To(Succeed())

		var kinds []algo.Kind
		for d.IsActive() {
			s, ok := d.Advance()
			Expect(ok).To(BeTrue())
			kinds = append(kinds, s.Kind)
		}
		Expect(kinds).To(HaveLen(5))
		Expect(kinds[4]).To(Equal(algo.KindDone))
		Expect(arr).To(Equal([]int{1, 2, 4, 5, 8}))

		cur, ok := d.Current()
		Expect(ok).To(BeTrue())
		Expect(cur.Terminal()).To(BeTrue())
		Expect(d.Finished()).To(BeTrue())

		_, ok = d.Advance()
		Expect(ok).To(BeFalse())
		Expect(d.Err()).NotTo(HaveOccurred())
	})

	It("keeps quick sort active across boundary steps", func() {
		Expect(d.Start("quick_sort", []int{3, 3, 3}, registry.Options{})).To(Succeed())
		boundaries := 0
		for d.IsActive() {
			s, _ := d.Advance()
			if s.Kind == algo.KindBoundary {
				boundaries++
				Expect(d.IsActive()).To(BeTrue())
			}
		}
		Expect(boundaries).To(Equal(2))
		cur, _ := d.Current()
		Expect(cur.Kind).To(Equal(algo.KindDone))
	})

	It("stops on the found step of a search", func() {
		opts := registry.Options{Target: 4}
		Expect(d.Start("linear_search", []int{9, 4, 4}, opts)).To(Succeed())
		res, err := d.RunToEnd(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Steps).To(Equal(2))
		Expect(res.Final.Kind).To(Equal(algo.KindFound))
		Expect(res.Final.SwapA).To(Equal(algo.Index(1)))
	})

	It("discards the run on Stop and can start again", func() {
		Expect(d.Start("merge_sort", []int{4, 3, 2, 1}, registry.Options{})).To(Succeed())
		d.Advance()
		d.Stop()
		Expect(d.IsActive()).To(BeFalse())
		Expect(d.Finished()).To(BeFalse())
		Expect(d.Start("radix_sort", []int{12, 3}, registry.Options{})).To(Succeed())
		Expect(d.StepCount()).To(Equal(0))
	})

	It("feeds observers and resets metrics per run", func() {
		count := metrics.NewStepCount()
		d.AddMetric(count)
		var seen []int
		d.AddObserver(playback.ObserverFunc(func(name string, index int, s algo.Step) {
			Expect(name).To(Equal("bubble_sort"))
			seen = append(seen, index)
		}))

		Expect(d.Start("bubble_sort", []int{3, 2, 1}, registry.Options{})).To(Succeed())
		res, err := d.RunToEnd(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(seen).To(Equal([]int{0, 1, 2, 3}))
		Expect(res.Metrics).To(HaveKeyWithValue("steps", 4.0))

		Expect(d.Start("bubble_sort", []int{1, 2}, registry.Options{})).To(Succeed())
		Expect(count.Value()).To(BeZero())
	})

	It("honours context cancellation", func() {
		Expect(d.Start("bubble_sort", []int{5, 4, 3, 2, 1}, registry.Options{})).To(Succeed())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := d.RunToEnd(ctx)
		Expect(err).To(MatchError(context.Canceled))
		Expect(d.IsActive()).To(BeTrue())
	})
})

var _ = Describe("Ensemble", func() {
	It("runs members over independent copies", func() {
		e, err := playback.NewEnsemble(registry.New(), []string{"bubble_sort", "merge_sort", "radix_sort"}, metrics.Defaults)
		Expect(err).NotTo(HaveOccurred())

		input := []int{40, 10, 30, 20}
		Expect(e.Start(input, registry.Options{})).To(Succeed())
		Expect(e.Active()).To(BeTrue())

		for e.Active() {
			Expect(e.Advance()).To(BeNumerically(">", 0))
		}
		Expect(input).To(Equal([]int{40, 10, 30, 20}))
		for _, d := range e.Drivers() {
			cur, ok := d.Current()
			Expect(ok).To(BeTrue())
			Expect(cur.Array).To(Equal([]int{10, 20, 30, 40}))
		}
	})

	It("rejects unknown members", func() {
		_, err := playback.NewEnsemble(registry.New(), []string{"bubble_sort", "sleep_sort"}, nil)
		Expect(err).To(MatchError(registry.ErrUnknownAlgorithm))
	})

	It("collects results headlessly", func() {
		e, err := playback.NewEnsemble(registry.New(), []string{"quick_sort", "bubble_sort"}, metrics.Defaults)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Start([]int{3, 1, 2}, registry.Options{})).To(Succeed())
		results, err := e.RunToEnd(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(2))
		Expect(results[0].Algorithm).To(Equal("quick_sort"))
		Expect(results[1].Final.Array).To(Equal([]int{1, 2, 3}))
	})
})
