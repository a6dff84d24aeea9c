package orders

import (
	"testing"

	"siparis-backend/internal/models"
)

var allStatuses = []models.OrderStatus{
	models.OrderStatusPending,
	models.OrderStatusPreparing,
	models.OrderStatusCompleted,
	models.OrderStatusServed,
	models.OrderStatusCancelled,
}

// İzinli geçişlerin tam listesi. Bunun dışındaki her (from, to) çifti,
// no-op ve geri gidişler dahil, reddedilmeli.
var allowedPairs = map[[2]models.OrderStatus]bool{
	{models.OrderStatusPending, models.OrderStatusPreparing}:   true,
	{models.OrderStatusPreparing, models.OrderStatusCompleted}: true,
	{models.OrderStatusCompleted, models.OrderStatusServed}:    true,
	{models.OrderStatusPending, models.OrderStatusCancelled}:   true,
	{models.OrderStatusPreparing, models.OrderStatusCancelled}: true,
}

func TestCanTransitionFullGrid(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := allowedPairs[[2]models.OrderStatus{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCompletedCannotBeCancelled(t *testing.T) {
	// Mutfak hazırladıktan sonra iptal yok
	if CanTransition(models.OrderStatusCompleted, models.OrderStatusCancelled) {
		t.Error("completed -> cancelled izinli olmamalı")
	}
}

func TestTerminalStatesHaveNoExit(t *testing.T) {
	for _, from := range []models.OrderStatus{models.OrderStatusServed, models.OrderStatusCancelled} {
		for _, to := range allStatuses {
			if CanTransition(from, to) {
				t.Errorf("kapalı durumdan geçiş izinli olmamalı: %s -> %s", from, to)
			}
		}
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		status models.OrderStatus
		want   bool
	}{
		{models.OrderStatusPending, false},
		{models.OrderStatusPreparing, false},
		{models.OrderStatusCompleted, false},
		{models.OrderStatusServed, true},
		{models.OrderStatusCancelled, true},
	}

	for _, tt := range tests {
		if got := IsTerminal(tt.status); got != tt.want {
			t.Errorf("IsTerminal(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

// Her durum ya aktif kümededir ya geçmiş kümede, asla ikisinde birden.
func TestActiveHistoricalPartition(t *testing.T) {
	inSet := func(set []models.OrderStatus, s models.OrderStatus) bool {
		for _, x := range set {
			if x == s {
				return true
			}
		}
		return false
	}

	for _, s := range allStatuses {
		active := inSet(ActiveStatuses, s)
		historical := inSet(HistoricalStatuses, s)
		if active == historical {
			t.Errorf("durum %s tam olarak bir kümede olmalı (active=%v, historical=%v)", s, active, historical)
		}
		if historical != IsTerminal(s) {
			t.Errorf("durum %s: geçmiş küme üyeliği IsTerminal ile tutarsız", s)
		}
	}
}
