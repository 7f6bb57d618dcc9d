package concurrent

import (
	"context"
	"runtime"
	"sync"
)

var defaultConcurrency = runtime.NumCPU()

// PoolInput to a PoolRunner
type PoolInput struct {
	OutC     chan<- PoolResult
	Supplier Supplier
}

// PoolResult of a supplier run by a PoolRunner
type PoolResult struct {
	Result
}

// PoolOpts is the configuration for a PoolRunner
type PoolOpts struct {
	// Concurrency is the number of Suppliers that the pool can
	// run in parallel at most
	Concurrency int
}

// PoolRunner has a fixed number of goroutines that are used to run
// an arbitrary number of tasks. A PoolRunner is a convenient way to
// execute multiple operations in parallel having control on how
// many go routines are run in the system.
type PoolRunner struct {
	opts PoolOpts
	wg   sync.WaitGroup
	ctx  context.Context
	once sync.Once

	// inC is the channel used to send operations to the PoolRunner. If
	// PoolInput.OutC is set, the result of the supplier will be sent
	// to that channel, otherwise the result will be ignored
	inC chan PoolInput
}

// NewPoolRunner creates and starts a new PoolRunner with the
// default configuration parameters
func NewPoolRunner(ctx context.Context) *PoolRunner {
	return NewPoolRunnerWithOpts(ctx, PoolOpts{
		Concurrency: defaultConcurrency,
	})
}

// NewPoolRunnerWithOpts creates a new PoolRunner with the specified
// configuration
func NewPoolRunnerWithOpts(ctx context.Context, opts PoolOpts) *PoolRunner {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}

	runner := &PoolRunner{
		opts: opts,
		ctx:  ctx,
		inC:  make(chan PoolInput, opts.Concurrency),
	}

	runner.wg.Add(opts.Concurrency)
	for i := 0; i < opts.Concurrency; i++ {
		go runner.run()
	}

	return runner
}

// Run schedules the input to be run by one of the goroutines of the
// pool. It blocks while all the goroutines are busy and fails
// if the context of the pool is done first
func (r *PoolRunner) Run(input PoolInput) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}

	select {
	case <-r.ctx.Done():
		return r.ctx.Err()
	case r.inC <- input:
		return nil
	}
}

func (r *PoolRunner) run() {
	defer r.wg.Done()
	for {
		select {
		case <-r.ctx.Done():
			return
		case in, ok := <-r.inC:
			if !ok {
				return
			}

			v, err := in.Supplier.Supply(r.ctx)
			if in.OutC != nil {
				in.OutC <- PoolResult{Result{value: v, err: err}}
			}
		}
	}
}

// Stop orderly stops all the goroutines in the PoolRunner
// and returns once all the goroutines have exited. Inputs
// already scheduled are run before the goroutines exit
// unless the context of the pool is done
func (r *PoolRunner) Stop() {
	r.once.Do(func() {
		close(r.inC)
	})
	r.wg.Wait()
}
