package order

import (
	"fmt"

	"varto/internal/pkg/errs"
)

// PaymentMethod is the out-of-band payment channel for an order.
// Only IBAN transfer is supported today; payment itself is never computed
// or settled by this system.
type PaymentMethod string

// PaymentIBAN means the customer wires the amount to the vendor's IBAN and
// confirmation happens out of band (in-app or by phone call).
const PaymentIBAN PaymentMethod = "iban"

// Validate checks the payment method against the supported set.
func (p PaymentMethod) Validate() error {
	if p != PaymentIBAN {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a supported payment method", string(p)))
	}
	return nil
}

// String returns the wire name of the payment method.
func (p PaymentMethod) String() string {
	return string(p)
}
