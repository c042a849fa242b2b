package replicate

import (
	"sync"

	"github.com/gosuri/uiprogress"
	"golang.org/x/exp/rand"

	"github.com/kalvessen/fieldsim/fit"
	"github.com/kalvessen/fieldsim/kron"
	"github.com/kalvessen/fieldsim/lmm"
	"github.com/kalvessen/fieldsim/simulate"
)

// Run executes opts.Reps independent simulate-then-fit cycles and returns
// one Row per replicate, keyed by replicate index.
//
// Configuration is validated eagerly — a bad generating parameter aborts
// before any replicate runs. Per-replicate non-convergence is recorded in
// Row.Code and never aborts the study.
//
// Determinism: replicate r simulates from stream Seed+r and fits with the
// deterministic default minimizer, so the same Options produce the same
// Results under any Workers value.
func Run(opts Options) (Results, error) {
	if opts.Reps < 1 {
		return nil, ErrBadReps
	}
	// Surface InvalidParameter-class errors before spawning anything.
	if _, err := kron.GridFactor(opts.NX, opts.NY, opts.SigmaX, opts.SigmaY, opts.RhoX, opts.RhoY); err != nil {
		return nil, err
	}

	fitOpts := opts.Fit
	if fitOpts == (fit.Options{}) {
		fitOpts = fit.DefaultOptions()
	}

	var bar *uiprogress.Bar
	if opts.Progress {
		uiprogress.Start()
		bar = uiprogress.AddBar(opts.Reps).AppendCompleted().PrependElapsed()
		defer uiprogress.Stop()
	}

	simOpts := simulate.Options{
		Plots: opts.Plots, NX: opts.NX, NY: opts.NY,
		SigmaX: opts.SigmaX, SigmaY: opts.SigmaY,
		RhoX: opts.RhoX, RhoY: opts.RhoY,
		SigmaResid: opts.SigmaResid,
	}

	rows := make(Results, opts.Reps)
	runOne := func(rep int) error {
		ds, err := simulate.Simulate(rand.NewSource(opts.Seed+uint64(rep)), simOpts)
		if err != nil {
			return err
		}
		dev, err := lmm.NewDeviance(ds, opts.NX, opts.NY)
		if err != nil {
			return err
		}
		res, err := fit.Fit(dev, opts.NX, opts.NY, fitOpts)
		if err != nil {
			return err
		}
		rows[rep] = Row{Rep: rep, Est: res.Theta, Deviance: res.Deviance, Code: res.Code}
		if bar != nil {
			bar.Incr()
		}
		return nil
	}

	workers := opts.Workers
	if workers < 2 {
		for rep := 0; rep < opts.Reps; rep++ {
			if err := runOne(rep); err != nil {
				return nil, err
			}
		}
		return rows, nil
	}

	// Fan replicates across the pool; each writes only its own row.
	jobs := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rep := range jobs {
				if err := runOne(rep); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			}
		}()
	}
	for rep := 0; rep < opts.Reps; rep++ {
		jobs <- rep
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return rows, nil
}
