package scheduler_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type recordingRenderer struct {
	mu       sync.Mutex
	logs     []string
	seqs     []int
	progress []int
	ended    int
	endTotal int
}

func (r *recordingRenderer) Configure(ports.RenderOptions) {}

func (r *recordingRenderer) OnPhaseStart(string, int) {}

func (r *recordingRenderer) OnUnitLog(_ string, seq, _ int, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seqs = append(r.seqs, seq)
	r.logs = append(r.logs, msg)
}

func (r *recordingRenderer) OnProgress(_ string, completed, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = append(r.progress, completed)
}

func (r *recordingRenderer) OnPhaseEnd(_ string, completed, total int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ended = completed
	r.endTotal = total
}

func TestPool_Sequential_Order(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		logger := mocks.NewMockLogger(ctrl)
		rend := &recordingRenderer{}

		sched := scheduler.NewSchedulerWith(rend, logger, 8, time.Millisecond)
		pool := sched.Pool(scheduler.ModeSequential)
		assert.Equal(t, 1, pool.Workers())

		var order []int
		summary, err := pool.Run(context.Background(), "analysis", 5, func(_ context.Context, ph *scheduler.Phase, i int) error {
			order = append(order, i)
			ph.Log(fmt.Sprintf("unit %d", i))
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
		assert.Equal(t, 5, summary.Completed)
		assert.Equal(t, 5, summary.Total)
		assert.Equal(t, []string{"unit 0", "unit 1", "unit 2", "unit 3", "unit 4"}, rend.logs)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, rend.seqs)
	})
}

func TestPool_Parallel_CountInvariant(t *testing.T) {
	for _, workers := range []int{1, 2, 4, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				logger := mocks.NewMockLogger(ctrl)
				rend := &recordingRenderer{}

				const n = 50
				pool := scheduler.NewSchedulerWith(rend, logger, workers, time.Millisecond).Pool(scheduler.ModeParallel)

				var running, peak atomic.Int32
				seen := make([]atomic.Int32, n)
				summary, err := pool.Run(context.Background(), "compile", n, func(_ context.Context, ph *scheduler.Phase, i int) error {
					cur := running.Add(1)
					for {
						old := peak.Load()
						if cur <= old || peak.CompareAndSwap(old, cur) {
							break
						}
					}
					seen[i].Add(1)
					ph.Log(fmt.Sprintf("unit %d", i))
					time.Sleep(time.Duration(i%3) * time.Millisecond)
					running.Add(-1)
					return nil
				})
				require.NoError(t, err)

				assert.Equal(t, n, summary.Completed)
				assert.LessOrEqual(t, int(peak.Load()), workers)
				for i := range seen {
					assert.Equal(t, int32(1), seen[i].Load(), "unit %d", i)
				}

				rend.mu.Lock()
				defer rend.mu.Unlock()
				assert.Equal(t, n, rend.ended)
				assert.Equal(t, n, rend.endTotal)
				assert.Len(t, rend.logs, n)
				require.NotEmpty(t, rend.progress)
				assert.Equal(t, n, rend.progress[len(rend.progress)-1])
				for i := 1; i < len(rend.progress); i++ {
					assert.Greater(t, rend.progress[i], rend.progress[i-1])
				}
			})
		})
	}
}

func TestPool_Parallel_StopsIssuingAfterFailure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		logger := mocks.NewMockLogger(ctrl)
		rend := &recordingRenderer{}

		pool := scheduler.NewSchedulerWith(rend, logger, 1, time.Millisecond).Pool(scheduler.ModeParallel)

		boom := errors.New("boom")
		var calls []int
		var mu sync.Mutex
		summary, err := pool.Run(context.Background(), "compile", 10, func(_ context.Context, _ *scheduler.Phase, i int) error {
			mu.Lock()
			calls = append(calls, i)
			mu.Unlock()
			if i == 1 {
				return boom
			}
			return nil
		})

		require.ErrorIs(t, err, boom)
		assert.Equal(t, []int{0, 1}, calls)
		assert.Equal(t, 1, summary.Completed)
	})
}

func TestPool_Parallel_WaitsForInFlight(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		logger := mocks.NewMockLogger(ctrl)
		rend := &recordingRenderer{}

		pool := scheduler.NewSchedulerWith(rend, logger, 2, time.Millisecond).Pool(scheduler.ModeParallel)

		boom := errors.New("boom")
		slowStarted := make(chan struct{})
		var slowFinished atomic.Bool
		_, err := pool.Run(context.Background(), "compile", 2, func(_ context.Context, _ *scheduler.Phase, i int) error {
			if i == 0 {
				close(slowStarted)
				time.Sleep(time.Second)
				slowFinished.Store(true)
				return nil
			}
			<-slowStarted
			return boom
		})

		require.ErrorIs(t, err, boom)
		assert.True(t, slowFinished.Load())
	})
}

func TestPool_Sequential_Failure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		logger := mocks.NewMockLogger(ctrl)
		rend := &recordingRenderer{}

		pool := scheduler.NewSchedulerWith(rend, logger, 4, time.Millisecond).Pool(scheduler.ModeSequential)

		boom := errors.New("boom")
		var calls int
		_, err := pool.Run(context.Background(), "compile", 5, func(context.Context, *scheduler.Phase, int) error {
			calls++
			if calls == 3 {
				return boom
			}
			return nil
		})

		require.ErrorIs(t, err, boom)
		assert.Equal(t, 3, calls)
		assert.Equal(t, 2, rend.ended)
	})
}

func TestPool_RendererLifecycle(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		logger := mocks.NewMockLogger(ctrl)
		rend := mocks.NewMockRenderer(ctrl)

		gomock.InOrder(
			rend.EXPECT().OnPhaseStart("analysis", 0),
			rend.EXPECT().OnProgress("analysis", 0, 0),
			rend.EXPECT().OnPhaseEnd("analysis", 0, 0, gomock.Any()),
		)

		pool := scheduler.NewSchedulerWith(rend, logger, 2, time.Millisecond).Pool(scheduler.ModeParallel)
		summary, err := pool.Run(context.Background(), "analysis", 0, func(context.Context, *scheduler.Phase, int) error {
			t.Error("no unit expected")
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 0, summary.Total)
	})
}

func TestLogQueue_Drain(t *testing.T) {
	q := scheduler.NewLogQueue()
	assert.Nil(t, q.Drain())

	q.Push("a")
	q.Push("b")
	assert.Equal(t, []string{"a", "b"}, q.Drain())
	assert.Nil(t, q.Drain())
}

func TestCounters(t *testing.T) {
	c := scheduler.NewCounters(3)

	var wg sync.WaitGroup
	for range 3 {
		wg.Go(func() { c.Inc() })
	}
	wg.Wait()

	completed, total := c.Snapshot()
	assert.Equal(t, 3, completed)
	assert.Equal(t, 3, total)
}
