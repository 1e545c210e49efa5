package puzzle

// GarbageQueue counts garbage rows an opponent has sent but that have not yet
// been injected. Each escalation cycle injects at most one.
type GarbageQueue struct {
	pending int
	total   int
}

// Add queues n more rows. Non-positive amounts are ignored.
func (q *GarbageQueue) Add(n int) {
	if n <= 0 {
		return
	}
	q.pending += n
	q.total += n
}

// Take consumes one pending row, reporting whether there was one.
func (q *GarbageQueue) Take() bool {
	if q.pending == 0 {
		return false
	}
	q.pending--
	return true
}

// Pending returns the number of rows still waiting to be injected.
func (q *GarbageQueue) Pending() int { return q.pending }

// Received returns the total number of rows ever queued.
func (q *GarbageQueue) Received() int { return q.total }
