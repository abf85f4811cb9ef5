package datasource

import "strconv"

// Counter hands out monotonically increasing string ids. One counter is
// owned by each loader instance and shared across all of its loads, so
// id ranges never restart per document. It is not safe for concurrent
// use; callers serialize loads or allocate a fresh loader per document.
type Counter struct {
	next int64
}

// NewCounter creates a counter starting at zero
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the current id and advances the counter
func (c *Counter) Next() string {
	id := strconv.FormatInt(c.next, 10)
	c.next++
	return id
}
