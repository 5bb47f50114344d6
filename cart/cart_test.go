package cart_test

import (
	"testing"

	"github.com/Aitik-official/walnut-leather-sub000/cart"
)

const sid = "test-session"

func check(t *testing.T, s *cart.Store, wantCount int, wantTotal float64) {
	t.Helper()
	if got := s.Count(sid); got != wantCount {
		t.Fatalf("count: want %d, got %d", wantCount, got)
	}
	if got := s.Total(sid); got != wantTotal {
		t.Fatalf("total: want %v, got %v", wantTotal, got)
	}
}

func TestAddIncrementsExistingLine(t *testing.T) {
	s := cart.NewStore()
	s.Add(sid, cart.Item{ProductID: "belt-01", Name: "Belt", Price: 45})
	s.Add(sid, cart.Item{ProductID: "belt-01", Name: "Belt", Price: 45})

	items := s.Items(sid)
	if len(items) != 1 {
		t.Fatalf("want a single line, got %d", len(items))
	}
	if items[0].Qty != 2 {
		t.Fatalf("want qty 2, got %d", items[0].Qty)
	}
	check(t, s, 2, 90)
}

func TestTotalsAfterEveryOperation(t *testing.T) {
	s := cart.NewStore()

	s.Add(sid, cart.Item{ProductID: "a", Price: 100})
	check(t, s, 1, 100)

	s.Add(sid, cart.Item{ProductID: "a", Price: 100})
	check(t, s, 2, 200)

	s.Add(sid, cart.Item{ProductID: "b", Price: 50})
	check(t, s, 3, 250)

	s.Increment(sid, "b")
	check(t, s, 4, 300)

	s.Decrement(sid, "b")
	check(t, s, 3, 250)

	s.Remove(sid, "a")
	check(t, s, 1, 50)

	s.Clear(sid)
	check(t, s, 0, 0)
}

func TestDecrementToZeroRemovesLine(t *testing.T) {
	s := cart.NewStore()
	s.Add(sid, cart.Item{ProductID: "wallet-03", Price: 79.5})

	s.Decrement(sid, "wallet-03")
	if len(s.Items(sid)) != 0 {
		t.Fatal("line should be removed when qty hits zero")
	}

	// decrementing an absent id is a no-op
	s.Decrement(sid, "wallet-03")
	check(t, s, 0, 0)
}

func TestIncrementAbsentIDIsNoop(t *testing.T) {
	s := cart.NewStore()
	s.Increment(sid, "ghost")
	check(t, s, 0, 0)
}

func TestSessionsAreIsolated(t *testing.T) {
	s := cart.NewStore()
	s.Add("alpha", cart.Item{ProductID: "bag-07", Price: 120})
	s.Add("beta", cart.Item{ProductID: "bag-07", Price: 120})
	s.Add("beta", cart.Item{ProductID: "bag-07", Price: 120})

	if s.Count("alpha") != 1 || s.Count("beta") != 2 {
		t.Fatalf("sessions bleed into each other: alpha=%d beta=%d", s.Count("alpha"), s.Count("beta"))
	}
}

func TestItemsReturnsCopyInInsertionOrder(t *testing.T) {
	s := cart.NewStore()
	s.Add(sid, cart.Item{ProductID: "a", Price: 1})
	s.Add(sid, cart.Item{ProductID: "b", Price: 2})
	s.Add(sid, cart.Item{ProductID: "c", Price: 3})

	items := s.Items(sid)
	if items[0].ProductID != "a" || items[1].ProductID != "b" || items[2].ProductID != "c" {
		t.Fatalf("order not preserved: %+v", items)
	}

	items[0].Qty = 99
	if s.Items(sid)[0].Qty != 1 {
		t.Fatal("Items must return a copy")
	}
}
