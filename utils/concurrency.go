package utils

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SplitWork runs do for every index in [0, workSize) over the given number of goroutines.
// routines <= 0 uses NumCPU plus -routines goroutines, at least 4. init is called once per routine
// before any work starts and may be nil. The first error cancels ctx for the remaining routines.
func SplitWork(ctx context.Context, routines int, workSize uint64, do func(ctx context.Context, workIndex uint64, routineIndex int) error, init func(routines, routineIndex int) error) error {
	if routines <= 0 {
		routines = max(runtime.NumCPU()-routines, 4)
	}

	if workSize < uint64(routines) {
		routines = int(workSize)
	}

	if init != nil {
		for routineIndex := range routines {
			if err := init(routines, routineIndex); err != nil {
				return err
			}
		}
	}

	var counter atomic.Uint64

	eg, ctx := errgroup.WithContext(ctx)

	for routineIndex := range routines {
		eg.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}

				workIndex := counter.Add(1)
				if workIndex > workSize {
					return nil
				}

				if err := do(ctx, workIndex-1, routineIndex); err != nil {
					return err
				}
			}
		})
	}
	return eg.Wait()
}
