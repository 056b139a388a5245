package enums

import "fmt"

// PaymentStatus represents the lifecycle state of a payment row.
type PaymentStatus string

const (
	PaymentStatusPaid      PaymentStatus = "pago"
	PaymentStatusPending   PaymentStatus = "pendente"
	PaymentStatusCancelled PaymentStatus = "cancelado"
)

var validPaymentStatuses = []PaymentStatus{
	PaymentStatusPaid,
	PaymentStatusPending,
	PaymentStatusCancelled,
}

// String implements fmt.Stringer.
func (p PaymentStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentStatus.
func (p PaymentStatus) IsValid() bool {
	for _, candidate := range validPaymentStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentStatus converts raw text into a PaymentStatus.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	status := PaymentStatus(raw)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid payment status %q", raw)
	}
	return status, nil
}
