package solve

import "time"

// Options configure a reconstruction run. The zero value disables
// backtracking and the deadline, giving plain greedy assembly.
type Options struct {
	// AcceptThreshold is the per-cell placement cost above which a
	// candidate is rejected and backtracking triggers. Zero or negative
	// disables the threshold, accepting any cost.
	AcceptThreshold float64

	// MaxBacktracks bounds the number of backtrack events before the
	// search gives up and returns the best completion found, flagged
	// degraded. Zero degenerates to pure greedy placement.
	MaxBacktracks int

	// Timeout bounds the wall-clock time of the assembly phase. On
	// expiry the best completion found so far is returned, flagged
	// degraded. Zero means no deadline.
	Timeout time.Duration

	// Seed drives the random baseline. Runs with equal seeds on equal
	// inputs produce identical placements. Ignored by the gradient and
	// color solvers, which are deterministic.
	Seed int64
}

// DefaultOptions returns the options used by the CLI when no flags are
// given: greedy assembly with no threshold, budget or deadline.
func DefaultOptions() Options {
	return Options{}
}
