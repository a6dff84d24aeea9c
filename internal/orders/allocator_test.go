package orders

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsRetryableConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serializationFailure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlockDetected", &pgconn.PgError{Code: "40P01"}, true},
		{"uniqueViolation", &pgconn.PgError{Code: "23505"}, true},
		{"wrappedUniqueViolation", fmt.Errorf("sipariş yazılamadı: %w", &pgconn.PgError{Code: "23505"}), true},
		{"gormDuplicatedKey", gorm.ErrDuplicatedKey, true},
		{"notNullViolation", &pgconn.PgError{Code: "23502"}, false},
		{"recordNotFound", gorm.ErrRecordNotFound, false},
		{"plainError", errors.New("bağlantı koptu"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableConflict(tt.err); got != tt.want {
				t.Errorf("isRetryableConflict(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
