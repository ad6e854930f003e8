package interfaces

import (
	"context"

	"github.com/holi/give-server/internal/square"
)

// Processor defines the contract for the payment processor backend.
// Handlers depend on this so tests can substitute a fake without network
// access.
type Processor interface {
	CreatePayment(ctx context.Context, req square.CreatePaymentRequest) (*square.Payment, error)
	RegisterApplePayDomain(ctx context.Context, domain string) (already bool, err error)
}
