package models_test

import (
	"testing"

	"github.com/Aitik-official/walnut-leather-sub000/models"
)

func TestComputeTotalsExample(t *testing.T) {
	// A: 100 x2, B: 50 x1 -> subtotal 250, tax 20, total 270
	totals := models.ComputeTotals([]models.OrderItem{
		{ProductID: "a", Price: 100, Quantity: 2},
		{ProductID: "b", Price: 50, Quantity: 1},
	})

	if totals.Subtotal != 250 {
		t.Fatalf("subtotal: want 250, got %v", totals.Subtotal)
	}
	if totals.Tax != 20 {
		t.Fatalf("tax: want 20, got %v", totals.Tax)
	}
	if totals.Shipping != 0 {
		t.Fatalf("shipping is always free, got %v", totals.Shipping)
	}
	if totals.Total != 270 {
		t.Fatalf("total: want 270, got %v", totals.Total)
	}
}

func TestComputeTotalsRoundsTaxToCents(t *testing.T) {
	cases := []struct {
		price    float64
		qty      int
		wantTax  float64
		wantTot  float64
		wantSub  float64
		scenario string
	}{
		{19.99, 1, 1.6, 21.59, 19.99, "single odd-cent item"},
		{33.33, 3, 8, 107.99, 99.99, "repeating cents"},
		{0, 5, 0, 0, 0, "zero-priced items"},
	}

	for _, tc := range cases {
		totals := models.ComputeTotals([]models.OrderItem{{Price: tc.price, Quantity: tc.qty}})
		if totals.Subtotal != tc.wantSub || totals.Tax != tc.wantTax || totals.Total != tc.wantTot {
			t.Fatalf("%s: got %+v", tc.scenario, totals)
		}
	}
}

func TestComputeTotalsEmptyOrder(t *testing.T) {
	totals := models.ComputeTotals(nil)
	if totals.Subtotal != 0 || totals.Tax != 0 || totals.Total != 0 {
		t.Fatalf("empty order should total zero, got %+v", totals)
	}
}

func TestTotalIsSubtotalPlusTax(t *testing.T) {
	totals := models.ComputeTotals([]models.OrderItem{
		{Price: 389, Quantity: 1},
		{Price: 45, Quantity: 2},
	})
	if totals.Total != totals.Subtotal+totals.Tax {
		t.Fatalf("total %v != subtotal %v + tax %v", totals.Total, totals.Subtotal, totals.Tax)
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []models.OrderStatus{
		models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusProcessing,
		models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCancelled,
	} {
		if !models.ValidOrderStatus(s) {
			t.Fatalf("%s should be valid", s)
		}
	}
	if models.ValidOrderStatus("refunded") {
		t.Fatal("refunded is not a settable status")
	}
}
