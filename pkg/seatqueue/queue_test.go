package seatqueue

import (
	"math/rand"
	"testing"
)

// checkInvariants walks the chain and verifies head, tail and count agree.
func checkInvariants(t *testing.T, q *SeatAvailability) {
	t.Helper()

	if q.count == 0 {
		if q.head != nil || q.tail != nil {
			t.Fatalf("empty queue has head=%v tail=%v", q.head, q.tail)
		}
		return
	}
	if q.head == nil || q.tail == nil {
		t.Fatalf("count=%d but head=%v tail=%v", q.count, q.head, q.tail)
	}
	if q.tail.next != nil {
		t.Fatal("tail has a successor")
	}

	steps := 0
	rec := q.head
	for rec != q.tail {
		rec = rec.next
		steps++
		if rec == nil || steps > q.count {
			t.Fatalf("tail not reachable from head within %d steps", q.count-1)
		}
	}
	if steps != q.count-1 {
		t.Fatalf("head reaches tail in %d steps, want %d", steps, q.count-1)
	}
}

func TestReserveEmpty(t *testing.T) {
	q := New()
	if seat, ok := q.Reserve(); ok || seat != "" {
		t.Fatalf("Reserve() on empty queue = (%q, %v), want (\"\", false)", seat, ok)
	}
	checkInvariants(t, q)
}

func TestZeroValueIsUsable(t *testing.T) {
	var q SeatAvailability
	q.Append("C7")
	if seat, ok := q.Reserve(); !ok || seat != "C7" {
		t.Fatalf("Reserve() = (%q, %v), want (\"C7\", true)", seat, ok)
	}
}

func TestFIFOOrder(t *testing.T) {
	seats := []string{"A1", "A2", "A3", "B1", "B2", "", "Z99"}

	q := New()
	for _, s := range seats {
		q.Append(s)
		checkInvariants(t, q)
	}
	if got := q.AvailableCount(); got != len(seats) {
		t.Fatalf("AvailableCount() = %d, want %d", got, len(seats))
	}

	for i, want := range seats {
		got, ok := q.Reserve()
		if !ok {
			t.Fatalf("Reserve() #%d reported empty queue", i)
		}
		if got != want {
			t.Fatalf("Reserve() #%d = %q, want %q", i, got, want)
		}
		checkInvariants(t, q)
	}
}

func TestRepeatedReserveOnEmpty(t *testing.T) {
	q := New()
	q.Append("A1")
	q.Reserve()

	for i := 0; i < 5; i++ {
		if _, ok := q.Reserve(); ok {
			t.Fatalf("Reserve() #%d on drained queue returned a seat", i)
		}
		if got := q.AvailableCount(); got != 0 {
			t.Fatalf("AvailableCount() = %d after empty Reserve, want 0", got)
		}
		checkInvariants(t, q)
	}
}

func TestDuplicatesKept(t *testing.T) {
	q := New()
	q.Append("A1")
	q.Append("A1")

	if got := q.AvailableCount(); got != 2 {
		t.Fatalf("AvailableCount() = %d, want 2", got)
	}
	for i := 0; i < 2; i++ {
		if seat, ok := q.Reserve(); !ok || seat != "A1" {
			t.Fatalf("Reserve() #%d = (%q, %v), want (\"A1\", true)", i, seat, ok)
		}
	}
	if _, ok := q.Reserve(); ok {
		t.Fatal("third Reserve() returned a seat")
	}
}

func TestReserveScenario(t *testing.T) {
	q := New()
	q.Append("A1")
	q.Append("A2")

	if seat, _ := q.Reserve(); seat != "A1" {
		t.Fatalf("Reserve() = %q, want A1", seat)
	}
	if got := q.AvailableCount(); got != 1 {
		t.Fatalf("AvailableCount() = %d, want 1", got)
	}
	if seat, _ := q.Reserve(); seat != "A2" {
		t.Fatalf("Reserve() = %q, want A2", seat)
	}
	if got := q.AvailableCount(); got != 0 {
		t.Fatalf("AvailableCount() = %d, want 0", got)
	}
	if seat, ok := q.Reserve(); ok {
		t.Fatalf("Reserve() = %q on empty queue", seat)
	}
}

func TestInterleavedAppendReserve(t *testing.T) {
	q := New()
	q.Append("B1")
	if seat, _ := q.Reserve(); seat != "B1" {
		t.Fatalf("Reserve() = %q, want B1", seat)
	}
	checkInvariants(t, q)

	q.Append("B2")
	q.Append("B3")
	checkInvariants(t, q)

	if seat, _ := q.Reserve(); seat != "B2" {
		t.Fatalf("Reserve() = %q, want B2", seat)
	}
	if got := q.AvailableCount(); got != 1 {
		t.Fatalf("AvailableCount() = %d, want 1", got)
	}
	checkInvariants(t, q)
}

func TestReservedRecordIsDetached(t *testing.T) {
	q := New()
	q.Append("A1")
	q.Append("A2")

	first := q.head
	q.Reserve()
	if first.next != nil {
		t.Fatal("reserved record still links into the queue")
	}
	if q.head == first || q.tail == first {
		t.Fatal("queue still references reserved record")
	}
}

func TestPeek(t *testing.T) {
	q := New()
	if _, ok := q.Peek(); ok {
		t.Fatal("Peek() on empty queue reported a seat")
	}

	q.Append("D4")
	q.Append("D5")
	for i := 0; i < 2; i++ {
		if seat, ok := q.Peek(); !ok || seat != "D4" {
			t.Fatalf("Peek() = (%q, %v), want (\"D4\", true)", seat, ok)
		}
	}
	if got := q.AvailableCount(); got != 2 {
		t.Fatalf("AvailableCount() after Peek = %d, want 2", got)
	}
	if seat, _ := q.Reserve(); seat != "D4" {
		t.Fatalf("Reserve() after Peek = %q, want D4", seat)
	}
}

func TestRandomOperationsMatchModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	q := New()
	var model []string
	appends, reserves := 0, 0

	for i := 0; i < 2000; i++ {
		if rng.Intn(3) > 0 {
			seat := string(rune('A'+rng.Intn(6))) + string(rune('0'+rng.Intn(10)))
			q.Append(seat)
			model = append(model, seat)
			appends++
		} else {
			got, ok := q.Reserve()
			if len(model) == 0 {
				if ok {
					t.Fatalf("op %d: Reserve() = %q, want empty", i, got)
				}
			} else {
				if !ok || got != model[0] {
					t.Fatalf("op %d: Reserve() = (%q, %v), want (%q, true)", i, got, ok, model[0])
				}
				model = model[1:]
				reserves++
			}
		}

		if got, want := q.AvailableCount(), appends-reserves; got != want {
			t.Fatalf("op %d: AvailableCount() = %d, want %d", i, got, want)
		}
		checkInvariants(t, q)
	}
}

func BenchmarkAppendReserve(b *testing.B) {
	q := New()
	for i := 0; i < b.N; i++ {
		q.Append("A1")
		q.Reserve()
	}
}
