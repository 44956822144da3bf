package subscription

import (
	"fmt"
	"time"
)

type BillingStatus string

const (
	BillingStatusPaid    BillingStatus = "paid"
	BillingStatusFailed  BillingStatus = "failed"
	BillingStatusPending BillingStatus = "pending"
)

var validBillingStatuses = map[BillingStatus]bool{
	BillingStatusPaid:    true,
	BillingStatusFailed:  true,
	BillingStatusPending: true,
}

func (s BillingStatus) IsValid() bool {
	return validBillingStatuses[s]
}

func NewBillingStatus(str string) (BillingStatus, error) {
	s := BillingStatus(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid billing status: %s", str)
	}
	return s, nil
}

// BillingRecord is one immutable entry in a subscription's billing
// history. Entries are append-only and ordered by date.
type BillingRecord struct {
	Date        time.Time
	Amount      float64
	Status      BillingStatus
	InvoiceID   string
	Description string
}

func NewBillingRecord(date time.Time, amount float64, status BillingStatus, invoiceID, description string) (BillingRecord, error) {
	if date.IsZero() {
		return BillingRecord{}, fmt.Errorf("billing record date is required")
	}
	if !status.IsValid() {
		return BillingRecord{}, fmt.Errorf("invalid billing status: %s", status)
	}
	return BillingRecord{
		Date:        date,
		Amount:      amount,
		Status:      status,
		InvoiceID:   invoiceID,
		Description: description,
	}, nil
}
