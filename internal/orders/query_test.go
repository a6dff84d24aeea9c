package orders

import (
	"testing"

	"siparis-backend/internal/models"
)

func TestClosedRevenue(t *testing.T) {
	list := []models.Order{
		{Status: models.OrderStatusServed, TotalAmount: 100},
		{Status: models.OrderStatusCancelled, TotalAmount: 999},
		{Status: models.OrderStatusServed, TotalAmount: 50},
	}

	if got := ClosedRevenue(list); got != 150 {
		t.Errorf("ClosedRevenue = %v, want 150", got)
	}
}

func TestRunningRevenueCountsCompleted(t *testing.T) {
	list := []models.Order{
		{Status: models.OrderStatusPending, TotalAmount: 10},
		{Status: models.OrderStatusPreparing, TotalAmount: 20},
		{Status: models.OrderStatusCompleted, TotalAmount: 40},
		{Status: models.OrderStatusServed, TotalAmount: 80},
		{Status: models.OrderStatusCancelled, TotalAmount: 160},
	}

	// Gün içi ciro: completed + served
	if got := RunningRevenue(list); got != 120 {
		t.Errorf("RunningRevenue = %v, want 120", got)
	}
}

func TestCountByStatus(t *testing.T) {
	tests := []struct {
		name string
		list []models.Order
		want StatusCounts
	}{
		{
			name: "empty",
			list: nil,
			want: StatusCounts{},
		},
		{
			name: "mixedBoard",
			list: []models.Order{
				{Status: models.OrderStatusPending},
				{Status: models.OrderStatusPending},
				{Status: models.OrderStatusPreparing},
				{Status: models.OrderStatusCompleted},
			},
			want: StatusCounts{Pending: 2, Preparing: 1, Completed: 1, All: 4},
		},
		{
			name: "terminalOrdersNotCounted",
			list: []models.Order{
				{Status: models.OrderStatusPending},
				{Status: models.OrderStatusServed},
				{Status: models.OrderStatusCancelled},
			},
			want: StatusCounts{Pending: 1, All: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountByStatus(tt.list); got != tt.want {
				t.Errorf("CountByStatus = %+v, want %+v", got, tt.want)
			}
		})
	}
}
