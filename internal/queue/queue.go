// Package queue provides the unbounded task queue shared between the
// directory producer and the search workers.
//
// The queue is a slice-backed ring buffer guarded by a mutex. Consumers block
// in Pop on a condition variable until either a task arrives or the producer
// marks the queue exhausted. Exhaustion wakes every waiter so that each one
// re-checks its exit condition.
package queue

import (
	"sync"

	"github.com/harrison/minigrep/internal/models"
)

// DefaultCapacity is the initial ring size used when none is given.
const DefaultCapacity = 1024

// TaskQueue is a growable FIFO of tasks with blocking pop semantics.
//
// Invariants (held whenever mu is not held):
//   - 0 <= count <= len(buf)
//   - the count slots starting at head (mod len(buf)) are the pending tasks in FIFO order
//   - tail == (head + count) % len(buf)
//   - exhausted only ever goes from false to true
type TaskQueue struct {
	mu        sync.Mutex
	cond      *sync.Cond
	buf       []models.Task
	head      int
	tail      int
	count     int
	exhausted bool
}

// New creates an empty queue with the given initial capacity.
// A capacity below 1 falls back to DefaultCapacity.
func New(capacity int) *TaskQueue {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	q := &TaskQueue{
		buf: make([]models.Task, capacity),
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends a task to the tail, doubling capacity first if the ring is full,
// and wakes one blocked consumer.
// Pushing to an exhausted queue panics: no task may follow MarkExhausted.
func (q *TaskQueue) Push(task models.Task) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.exhausted {
		panic("queue: push after MarkExhausted")
	}

	if q.count == len(q.buf) {
		q.grow()
	}

	q.buf[q.tail] = task
	q.tail = (q.tail + 1) % len(q.buf)
	q.count++

	q.cond.Signal()
}

// Pop removes and returns the head task, blocking while the queue is empty and
// not yet exhausted. It returns ("", false) once the queue is both empty and
// exhausted; every later call returns the same.
func (q *TaskQueue) Pop() (models.Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == 0 && !q.exhausted {
		q.cond.Wait()
	}

	if q.count == 0 {
		return "", false
	}

	task := q.buf[q.head]
	q.buf[q.head] = ""
	q.head = (q.head + 1) % len(q.buf)
	q.count--

	return task, true
}

// MarkExhausted records that no further tasks will be pushed and wakes all
// blocked consumers. Calling it more than once has no further effect.
func (q *TaskQueue) MarkExhausted() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.exhausted = true
	q.cond.Broadcast()
}

// Len returns the number of pending tasks.
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Cap returns the current ring capacity.
func (q *TaskQueue) Cap() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}

// Exhausted reports whether MarkExhausted has been called.
func (q *TaskQueue) Exhausted() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.exhausted
}

// grow doubles the ring and re-linearises pending tasks from the logical head
// so that head becomes 0 and tail becomes count. Caller holds mu.
func (q *TaskQueue) grow() {
	next := make([]models.Task, len(q.buf)*2)

	// Two copies cover the wrapped and unwrapped cases alike.
	n := copy(next, q.buf[q.head:])
	if n < q.count {
		copy(next[n:], q.buf[:q.count-n])
	}

	q.buf = next
	q.head = 0
	q.tail = q.count
}
