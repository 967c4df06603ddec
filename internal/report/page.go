package report

import (
	"context"
	"errors"
	"sync"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Page tracks the fetch behind a view. a failed fetch keeps no data.
type Page[T any] struct {
	mu     sync.Mutex
	status Status
	data   T
	err    error
}

func (p *Page[T]) set(status Status, data T, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = status
	p.data = data
	p.err = err
}

// Load runs fetch once, there are no retries.
func (p *Page[T]) Load(ctx context.Context, fetch func(ctx context.Context) (T, error)) error {
	var zero T
	p.set(StatusLoading, zero, nil)

	data, err := fetch(ctx)
	if err != nil {
		p.set(StatusFailed, zero, err)
		return err
	}
	p.set(StatusLoaded, data, nil)
	return nil
}

func (p *Page[T]) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

func (p *Page[T]) Data() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data, p.status == StatusLoaded
}

func (p *Page[T]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// All runs every load concurrently and waits for them. the errors of the
// loads that failed are joined.
func All(ctx context.Context, loads ...func(ctx context.Context) error) error {
	errs := make([]error, len(loads))
	var wg sync.WaitGroup
	for i, load := range loads {
		wg.Add(1)
		go func(i int, load func(ctx context.Context) error) {
			defer wg.Done()
			errs[i] = load(ctx)
		}(i, load)
	}
	wg.Wait()
	return errors.Join(errs...)
}
