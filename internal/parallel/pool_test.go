package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want GOMAXPROCS", n, pool.Workers())
		}
		pool.Close()
	}
}

func TestWorkerPool_Run(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	jobs := make([]Job, 100)
	for i := range jobs {
		jobs[i] = func(context.Context) error {
			counter.Add(1)
			return nil
		}
	}

	errs := pool.Run(context.Background(), jobs)
	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
	for i, err := range errs {
		if err != nil {
			t.Errorf("job %d: %v", i, err)
		}
	}
}

func TestWorkerPool_RunErrorsInJobOrder(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	errOdd := errors.New("odd")
	jobs := make([]Job, 20)
	for i := range jobs {
		jobs[i] = func(context.Context) error {
			if i%2 == 1 {
				return errOdd
			}
			return nil
		}
	}

	errs := pool.Run(context.Background(), jobs)
	if len(errs) != len(jobs) {
		t.Fatalf("len(errs) = %d, want %d", len(errs), len(jobs))
	}
	for i, err := range errs {
		if want := i%2 == 1; errors.Is(err, errOdd) != want {
			t.Errorf("job %d: err = %v", i, err)
		}
	}
}

func TestWorkerPool_RunEmpty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	if errs := pool.Run(context.Background(), nil); len(errs) != 0 {
		t.Errorf("Run(nil) = %v", errs)
	}
}

func TestWorkerPool_RunCancelled(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int64
	jobs := make([]Job, 10)
	for i := range jobs {
		jobs[i] = func(context.Context) error {
			ran.Add(1)
			return nil
		}
	}

	errs := pool.Run(ctx, jobs)
	if ran.Load() != 0 {
		t.Errorf("%d jobs ran after cancellation", ran.Load())
	}
	for i, err := range errs {
		if !errors.Is(err, context.Canceled) {
			t.Errorf("job %d: err = %v, want context.Canceled", i, err)
		}
	}
}

func TestWorkerPool_RunAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	errs := pool.Run(context.Background(), []Job{func(context.Context) error { return nil }})
	if !errors.Is(errs[0], ErrClosed) {
		t.Errorf("err = %v, want ErrClosed", errs[0])
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()
	if pool.IsRunning() {
		t.Error("pool still running after Close")
	}
}

func TestWorkerPool_WorkStealing(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Job 0 blocks worker 0; the jobs queued behind it must still finish.
	release := make(chan struct{})
	var finished atomic.Int64
	jobs := make([]Job, 16)
	jobs[0] = func(context.Context) error {
		<-release
		return nil
	}
	for i := 1; i < len(jobs); i++ {
		jobs[i] = func(context.Context) error {
			finished.Add(1)
			return nil
		}
	}

	done := make(chan struct{})
	go func() {
		pool.Run(context.Background(), jobs)
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for finished.Load() < int64(len(jobs)-1) {
		select {
		case <-deadline:
			t.Fatalf("only %d jobs finished while worker 0 was blocked", finished.Load())
		default:
			time.Sleep(time.Millisecond)
		}
	}
	close(release)
	<-done
}

func BenchmarkWorkerPool_Run(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	jobs := make([]Job, 64)
	for i := range jobs {
		jobs[i] = func(context.Context) error { return nil }
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.Run(context.Background(), jobs)
	}
}
