package errors

import (
	stdErrors "errors"
	"testing"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/catalog"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/order"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/user"
)

func TestFromDomainErrorClassifiesSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
	}{
		{"lack of money", user.NewLackOfMoneyError(1, shared.MustMoney("5.00"), shared.MustMoney("19.20")), CodeLackOfMoney},
		{"order canceled", order.NewOrderAlreadyCanceledError("abc"), CodeOrderCanceled},
		{"order delivered", order.NewOrderDeliveredError("abc"), CodeOrderDelivered},
		{"not available", catalog.NewNotAvailableError("meal", 12, 11, 2), CodeNotAvailable},
		{"meal not found", catalog.NewMealNotFoundError(999), CodeEntityNotFound},
		{"email exists", user.NewEmailAlreadyExistsError("a@b.com"), CodeEmailExists},
		{"invalid email", user.NewInvalidEmailError("not-an-address"), CodeParameter},
		{"validation", shared.NewValidationError("order", "status", "unknown status"), CodeParameter},
		{"generic not found", shared.NewNotFoundError("order", "abc"), CodeEntityNotFound},
		{"unmatched is internal", stdErrors.New("connection reset"), CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromDomainError(tt.err)
			if appErr.Code != tt.code {
				t.Errorf("code = %s, want %s", appErr.Code, tt.code)
			}
			if !Is(appErr, tt.code) {
				t.Errorf("Is(err, %s) = false, want true", tt.code)
			}
		})
	}
}

func TestFromDomainErrorKeepsExistingAppError(t *testing.T) {
	original := Parameter("quantity must be positive")
	if got := FromDomainError(original); got != original {
		t.Errorf("existing AppError was re-wrapped: %v", got)
	}
}

func TestIsRejectsOtherCodesAndPlainErrors(t *testing.T) {
	appErr := New(CodeTimeOut, "past the daily cutoff")
	if Is(appErr, CodeLackOfMoney) {
		t.Error("Is matched a different code")
	}
	if Is(stdErrors.New("plain"), CodeInternal) {
		t.Error("Is matched a non-AppError")
	}
	if Is(nil, CodeInternal) {
		t.Error("Is matched nil")
	}
}
