package order

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrPaymentDetailsAreNotConstructed = errors.New("PaymentDetails must be created via NewPaymentDetails constructor")

// PaymentDetails is the payment method summary kept on an order. The raw card
// number is consumed during construction and only a masked reference with the
// last four digits is retained; the security number is validated and
// discarded entirely.
type PaymentDetails struct {
	cardTypeID       int
	maskedCardNumber string
	cardHolderName   string
	expiration       time.Time

	guard guard.ConstructorGuard
}

// NewPaymentDetails validates raw card details and produces the summary kept
// on the order. Every failure names the offending field: CardNumber,
// CardHolderName, CardExpiration, CardSecurityNumber or CardTypeId.
func NewPaymentDetails(
	cardTypeID int,
	cardNumber string,
	cardHolderName string,
	expiration time.Time,
	securityNumber string,
) (PaymentDetails, error) {
	if cardNumber == "" {
		return PaymentDetails{}, errs.NewValueIsRequiredError("CardNumber")
	}
	if cardHolderName == "" {
		return PaymentDetails{}, errs.NewValueIsRequiredError("CardHolderName")
	}
	if !expiration.After(time.Now()) {
		return PaymentDetails{}, errs.NewValueIsInvalidErrorWithCause("CardExpiration",
			errors.New("card is expired"))
	}
	if securityNumber == "" {
		return PaymentDetails{}, errs.NewValueIsRequiredError("CardSecurityNumber")
	}
	if cardTypeID <= 0 {
		return PaymentDetails{}, errs.NewValueIsInvalidErrorWithCause("CardTypeId",
			errors.New("card type id must be greater than 0"))
	}

	return PaymentDetails{
		cardTypeID:       cardTypeID,
		maskedCardNumber: maskCardNumber(cardNumber),
		cardHolderName:   cardHolderName,
		expiration:       expiration,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestorePaymentDetails reconstructs a payment summary from persistence. The
// stored card number is already masked, so no masking or expiry check is
// re-applied.
func RestorePaymentDetails(
	cardTypeID int,
	maskedCardNumber string,
	cardHolderName string,
	expiration time.Time,
) (PaymentDetails, error) {
	if maskedCardNumber == "" {
		return PaymentDetails{}, errs.NewValueIsRequiredError("CardNumber")
	}
	if cardTypeID <= 0 {
		return PaymentDetails{}, errs.NewValueIsInvalidErrorWithCause("CardTypeId",
			errors.New("card type id must be greater than 0"))
	}

	return PaymentDetails{
		cardTypeID:       cardTypeID,
		maskedCardNumber: maskedCardNumber,
		cardHolderName:   cardHolderName,
		expiration:       expiration,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// maskCardNumber keeps the last four digits and replaces the rest with X.
func maskCardNumber(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return strings.Repeat("X", 12) + cardNumber
	}
	return strings.Repeat("X", 12) + cardNumber[len(cardNumber)-4:]
}

// Validate ensures the payment details were created through a constructor.
func (p PaymentDetails) Validate() error {
	return p.guard.Validate(ErrPaymentDetailsAreNotConstructed)
}

// CardTypeID returns the identifier of the card type used.
func (p PaymentDetails) CardTypeID() int {
	return p.cardTypeID
}

// MaskedCardNumber returns the stored card reference, e.g. "XXXXXXXXXXXX0005".
func (p PaymentDetails) MaskedCardNumber() string {
	return p.maskedCardNumber
}

// CardHolderName returns the name embossed on the card.
func (p PaymentDetails) CardHolderName() string {
	return p.cardHolderName
}

// Expiration returns the card expiration instant.
func (p PaymentDetails) Expiration() time.Time {
	return p.expiration
}
