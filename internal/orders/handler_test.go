package orders

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("fiber.Error bekleniyordu, gelen: %v", err)
	}
	return fe.Code
}

func TestValidateCreateOrder(t *testing.T) {
	valid := func() CreateOrderRequest {
		return CreateOrderRequest{
			CustomerName:  "Ayşe",
			CustomerPhone: "0912345678",
			Items:         []OrderLineRequest{{MenuItemID: 1, Quantity: 2}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateOrderRequest)
		wantErr bool
	}{
		{"valid", func(r *CreateOrderRequest) {}, false},
		{"missingName", func(r *CreateOrderRequest) { r.CustomerName = "" }, true},
		{"whitespaceName", func(r *CreateOrderRequest) { r.CustomerName = "   " }, true},
		{"missingPhone", func(r *CreateOrderRequest) { r.CustomerPhone = "" }, true},
		{"emptyCart", func(r *CreateOrderRequest) { r.Items = nil }, true},
		{"zeroQuantity", func(r *CreateOrderRequest) { r.Items[0].Quantity = 0 }, true},
		{"negativeQuantity", func(r *CreateOrderRequest) { r.Items[0].Quantity = -3 }, true},
		{"noteOptional", func(r *CreateOrderRequest) { r.CustomerNote = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := valid()
			tt.mutate(&body)
			err := validateCreateOrder(&body)
			if tt.wantErr {
				if err == nil {
					t.Fatal("hata bekleniyordu")
				}
				if code := fiberStatus(t, err); code != fiber.StatusBadRequest {
					t.Errorf("status = %d, want 400", code)
				}
			} else if err != nil {
				t.Errorf("beklenmeyen hata: %v", err)
			}
		})
	}
}

func TestValidateCreateOrderTrimsFields(t *testing.T) {
	body := CreateOrderRequest{
		CustomerName:  "  Ali  ",
		CustomerPhone: " 0912 ",
		CustomerNote:  " not ",
		Items:         []OrderLineRequest{{MenuItemID: 1, Quantity: 1}},
	}
	if err := validateCreateOrder(&body); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if body.CustomerName != "Ali" || body.CustomerPhone != "0912" || body.CustomerNote != "not" {
		t.Errorf("alanlar trimlenmedi: %+v", body)
	}
}
