package velocity

import (
	"context"
	"math"
	"math/rand"
)

// runSimulation runs the configured number of independent Monte Carlo trials
// across a pool of workers, each owning a distinctly seeded RNG. Trial order
// is not preserved; the caller sorts the merged outcomes.
func (f *Forecaster) runSimulation(ctx context.Context, remainingWork int, mean, stdDev float64) ([]int, error) {
	trials := f.cfg.Trials
	workers := f.cfg.Workers
	if trials < 100 {
		workers = 1
	}

	baseSeed := f.cfg.Seed
	if baseSeed == 0 {
		baseSeed = f.now().UnixNano()
	}

	horizon := f.cfg.HorizonWeeks
	resultsCh := make(chan []int, workers)
	perWorker := trials / workers

	for w := 0; w < workers; w++ {
		count := perWorker
		if w == workers-1 {
			count = trials - perWorker*(workers-1)
		}
		go func(count int, seed int64) {
			rng := rand.New(rand.NewSource(seed))
			out := make([]int, count)
			for i := range out {
				out[i] = simulateTrial(rng, remainingWork, mean, stdDev, horizon)
			}
			select {
			case resultsCh <- out:
			case <-ctx.Done():
			}
		}(count, baseSeed+int64(w))
	}

	outcomes := make([]int, 0, trials)
	for w := 0; w < workers; w++ {
		select {
		case out := <-resultsCh:
			outcomes = append(outcomes, out...)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return outcomes, nil
}

// simulateTrial subtracts a sampled weekly velocity from the remaining work
// until it is exhausted or the horizon cap is reached.
func simulateTrial(rng *rand.Rand, remainingWork int, mean, stdDev float64, horizon int) int {
	remaining := float64(remainingWork)
	weeks := 0
	for remaining > 0 && weeks < horizon {
		weeks++
		remaining -= sampleWeeklyVelocity(rng, mean, stdDev)
	}
	return weeks
}

// sampleWeeklyVelocity draws from Normal(mean, stdDev) via the Box-Muller
// transform, clamped so a trial can never stall on zero or negative throughput.
func sampleWeeklyVelocity(rng *rand.Rand, mean, stdDev float64) float64 {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()

	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	v := mean + z*stdDev
	if v < minWeeklySample {
		v = minWeeklySample
	}
	return v
}
