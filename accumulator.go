package bytesimd

// Accumulator keeps a running lane-wise sum in bit-plane form, so a batch of
// additions pays the horizontal conversion once, at read-out time, instead
// of per call.
//
// Not safe for concurrent use: callers wanting parallelism should feed
// per-goroutine accumulators and combine the results with Sum, or use
// SumConcurrent.
type Accumulator struct {
	sum    Vector
	count  int
	logger *Logger
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator(optFns ...Option) *Accumulator {
	opts := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Accumulator{
		logger: opts.logger,
	}
}

// Add folds v into the running sum.
func (a *Accumulator) Add(v Vector) {
	a.sum.AddAssign(&v)
	a.count++
}

// AddBytes transposes the bytes behind b and folds them into the running
// sum. The array is only read.
func (a *Accumulator) AddBytes(b *[Size]byte) {
	v := FromBytes(b)
	a.sum.AddAssign(&v)
	a.count++
}

// Sum returns the running sum. The accumulator remains usable and keeps
// accumulating on top of the returned value.
func (a *Accumulator) Sum() Vector {
	a.logger.LogAccumulate(a.count, a.sum.CountNonzero())
	return a.sum
}

// Bytes returns the running sum in horizontal form.
func (a *Accumulator) Bytes() [Size]byte {
	return a.Sum().Bytes()
}

// Count returns the number of vectors folded in since the last Reset.
func (a *Accumulator) Count() int {
	return a.count
}

// Reset clears the running sum and count.
func (a *Accumulator) Reset() {
	a.sum = Vector{}
	a.count = 0
}
