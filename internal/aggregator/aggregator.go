package aggregator

import (
	"context"
	"log"
	"sync"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/provider"
)

// Aggregator fans a search out to every configured provider and joins the
// results in configuration order. Providers are independent, so they are
// queried concurrently; each adapter already bounds its own call with a
// timeout, so one slow provider cannot stall the batch past that bound.
type Aggregator struct {
	providers []provider.Provider
	logger    *log.Logger
}

func New(logger *log.Logger, providers ...provider.Provider) *Aggregator {
	if logger == nil {
		logger = log.Default()
	}
	return &Aggregator{providers: providers, logger: logger}
}

// Search returns the concatenation of every provider's results, each sublist
// in its original order, sublists in configuration order. An empty result is
// a valid outcome, not an error. A panicking adapter is recovered and
// contributes nothing.
func (a *Aggregator) Search(ctx context.Context, filter provider.JobFilter) []provider.NormalizedJob {
	results := make([][]provider.NormalizedJob, len(a.providers))

	var wg sync.WaitGroup
	for i, p := range a.providers {
		wg.Add(1)
		go func(i int, p provider.Provider) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					a.logger.Printf("[Aggregator] provider %s panicked: %v", p.Name(), r)
					results[i] = nil
				}
			}()
			results[i] = p.Search(ctx, filter)
		}(i, p)
	}
	wg.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]provider.NormalizedJob, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}
