package obs

import (
	"context"
	"log"
	"time"
)

// Time logs the wall-clock duration of an operation when the returned
// function runs, including the error the operation finished with, if any.
// Usage: defer obs.Time(ctx, "solver.Solve")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("op=%s dur=%dms err=%v", name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s dur=%dms", name, dur.Milliseconds())
	}
}
