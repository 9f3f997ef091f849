package service

import (
	"testing"

	"github.com/Leplia/Diller-shop/internal/model"
	"github.com/Leplia/Diller-shop/internal/repository"
)

func ranked(id uint64, orders int64) repository.PopularCar {
	return repository.PopularCar{
		CarCard:    repository.CarCard{Car: model.Car{ID: id}},
		OrderCount: orders,
	}
}

func ids(cars []repository.PopularCar) []uint64 {
	out := make([]uint64, len(cars))
	for i, c := range cars {
		out[i] = c.ID
	}
	return out
}

func TestPadPopularUnderSupplied(t *testing.T) {
	withOrders := []repository.PopularCar{ranked(1, 5), ranked(2, 3)}
	topPriced := []repository.PopularCar{ranked(10, 0), ranked(11, 0), ranked(12, 0)}

	got := PadPopular(withOrders, topPriced, 6)
	if len(got) != 6 {
		t.Fatalf("expected exactly 6 cars, got %d", len(got))
	}
	// Ordered cars keep the lead slots, then the price-ranked list is
	// cycled with modulo indexing: 10, 11, 12, 10.
	want := []uint64{1, 2, 10, 11, 12, 10}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Fatalf("slot %d: expected car %d, got %d (full: %v)", i, want[i], id, ids(got))
		}
	}
	// Slot 2 and slot 5 are the same car; duplication is expected.
	if got[2].ID != got[5].ID {
		t.Fatalf("expected modulo wrap to repeat the first padded car")
	}
}

func TestPadPopularOverSupplied(t *testing.T) {
	withOrders := make([]repository.PopularCar, 0, 8)
	for i := uint64(1); i <= 8; i++ {
		withOrders = append(withOrders, ranked(i, int64(9-i)))
	}
	got := PadPopular(withOrders, nil, 6)
	if len(got) != 6 {
		t.Fatalf("expected truncation to 6, got %d", len(got))
	}
	for i, id := range ids(got) {
		if id != uint64(i+1) {
			t.Fatalf("truncation must keep the order-count ranking, got %v", ids(got))
		}
	}
}

func TestPadPopularNoOrders(t *testing.T) {
	topPriced := []repository.PopularCar{ranked(5, 0), ranked(6, 0)}
	got := PadPopular(nil, topPriced, 6)
	// Padding fills all 6 slots by cycling the two available cars.
	if len(got) != 6 {
		t.Fatalf("expected 6 padded cars, got %d", len(got))
	}
	want := []uint64{5, 6, 5, 6, 5, 6}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Fatalf("expected cyclic fill %v, got %v", want, ids(got))
		}
	}
}

func TestPadPopularEmptyCatalog(t *testing.T) {
	if got := PadPopular(nil, nil, 6); len(got) != 0 {
		t.Fatalf("empty database must yield an empty list, got %d entries", len(got))
	}
}

func TestPadPopularExactSupply(t *testing.T) {
	withOrders := []repository.PopularCar{ranked(1, 2), ranked(2, 1)}
	got := PadPopular(withOrders, []repository.PopularCar{ranked(9, 0)}, 2)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("exact supply must pass through untouched, got %v", ids(got))
	}
}
