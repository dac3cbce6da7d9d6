package main

import (
	"errors"
	"sync"
)

var (
	ErrQueueFull  = errors.New("event queue is full")
	ErrQueueEmpty = errors.New("event queue is empty")
)

// EventQueue holds the window and input events waiting to be handled this frame.
type EventQueue struct {
	mu       sync.Mutex
	capacity int
	q        []Event
}

// Insert inserts the event onto the end of the queue
func (q *EventQueue) Insert(ev Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.q) < q.capacity {
		q.q = append(q.q, ev)
		return nil
	}
	return ErrQueueFull
}

// Remove removes the oldest event from the queue
func (q *EventQueue) Remove() (Event, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.q) > 0 {
		ev := q.q[0]
		q.q = q.q[1:]
		return ev, nil
	}
	return Event{}, ErrQueueEmpty
}

// Discard removes every queued event that matches, keeping the others in
// order, and returns how many were removed
func (q *EventQueue) Discard(match func(Event) bool) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.q[:0]
	for _, ev := range q.q {
		if !match(ev) {
			kept = append(kept, ev)
		}
	}
	n := len(q.q) - len(kept)
	q.q = kept
	return n
}

// Len returns the number of queued events
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.q)
}

// NewEventQueue creates an empty queue with desired capacity
func NewEventQueue(capacity int) *EventQueue {
	return &EventQueue{
		capacity: capacity,
		q:        make([]Event, 0, capacity),
	}
}
