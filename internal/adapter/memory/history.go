package memory

import (
	"sync"

	"github.com/eapache/queue"
)

// History is the bounded row sequence of one session.
// Rows are added at the back of the queue and evicted from the front, so
// reading it back to front yields newest-first order.
type History struct {
	mu      sync.Mutex
	rows    *queue.Queue
	maxRows int
}

func newHistory(maxRows int) *History {
	return &History{
		rows:    queue.New(),
		maxRows: maxRows,
	}
}

// push adds row as the newest entry and returns how many old rows were evicted.
func (h *History) push(row string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.rows.Add(row)
	evicted := 0
	for h.rows.Length() > h.maxRows {
		h.rows.Remove()
		evicted++
	}
	return evicted
}

// Rows returns a newest-first copy of the stored rows.
func (h *History) Rows() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := h.rows.Length()
	if n == 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := -1; i >= -n; i-- {
		out = append(out, h.rows.Get(i).(string))
	}
	return out
}

// Len returns the number of stored rows.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rows.Length()
}
