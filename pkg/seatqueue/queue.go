// Package seatqueue holds the FIFO of seats that are free to be reserved.
package seatqueue

type seatRecord struct {
	seatID string
	next   *seatRecord
}

// SeatAvailability is a first-in-first-out queue of seat identifiers.
// The zero value is an empty queue. It is not safe for concurrent use;
// callers sharing one instance must serialize access themselves.
type SeatAvailability struct {
	head  *seatRecord
	tail  *seatRecord // last record, only used to append in O(1)
	count int
}

// New returns an empty queue.
func New() *SeatAvailability {
	return &SeatAvailability{}
}

// Append queues seatID behind every seat already waiting.
// Identifiers are opaque: empty strings and duplicates are accepted.
func (q *SeatAvailability) Append(seatID string) {
	rec := &seatRecord{seatID: seatID}
	if q.tail == nil {
		q.head = rec
	} else {
		q.tail.next = rec
	}
	q.tail = rec
	q.count++
}

// Reserve removes and returns the oldest queued seat.
// ok is false when nothing is queued.
func (q *SeatAvailability) Reserve() (seatID string, ok bool) {
	if q.head == nil {
		return "", false
	}

	rec := q.head
	q.head = rec.next
	if q.head == nil {
		q.tail = nil
	}
	rec.next = nil
	q.count--

	return rec.seatID, true
}

// Peek returns the seat the next Reserve would hand out, without removing it.
func (q *SeatAvailability) Peek() (seatID string, ok bool) {
	if q.head == nil {
		return "", false
	}
	return q.head.seatID, true
}

// AvailableCount returns the number of queued seats.
func (q *SeatAvailability) AvailableCount() int {
	return q.count
}
