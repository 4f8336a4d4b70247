// Package acquiring models the Init request of the T-Bank acquiring API:
// the outer payment envelope, the fiscal receipt in its two FFD variants,
// and the validated value types both are assembled from. Every primitive
// that reaches the wire passes through a constructor or a Seal check first.
package acquiring

import (
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noxlovette/t-bank-sdk/validation"
)

// Amount is a sum in kopecks. The Init request caps it at ten decimal
// digits, which the gateway further bounds to the unsigned 32-bit range.
type Amount uint64

const maxAmount = math.MaxUint32

// NewAmount validates a kopeck sum for the ten-digit request context.
func NewAmount(kopecks uint64) (Amount, error) {
	if err := checkAmount("Amount", kopecks); err != nil {
		return 0, err
	}
	return Amount(kopecks), nil
}

// Kopecks returns the raw minor-unit value.
func (a Amount) Kopecks() uint64 { return uint64(a) }

func checkAmount(field string, kopecks uint64) *validation.FieldError {
	if kopecks == 0 {
		return validation.NewFieldError(field, "must be greater than zero")
	}
	if kopecks > maxAmount {
		return validation.NewFieldError(field, "must not exceed %d kopecks", uint64(maxAmount))
	}
	return nil
}

// checkSubAmount validates a payment-breakdown component. Breakdown sums may
// be zero (the component is simply absent) but share the Amount ceiling.
func checkSubAmount(field string, kopecks uint64) *validation.FieldError {
	if kopecks > maxAmount {
		return validation.NewFieldError(field, "must not exceed %d kopecks", uint64(maxAmount))
	}
	return nil
}

// Quantity is an item count, FFD tag 1023.
type Quantity uint64

const maxQuantity = math.MaxUint16

// NewQuantity validates an item count.
func NewQuantity(v uint64) (Quantity, error) {
	if err := checkQuantity("Quantity", v); err != nil {
		return 0, err
	}
	return Quantity(v), nil
}

func checkQuantity(field string, v uint64) *validation.FieldError {
	if v == 0 {
		return validation.NewFieldError(field, "must be greater than zero")
	}
	if v > maxQuantity {
		return validation.NewFieldError(field, "must not exceed %d", uint64(maxQuantity))
	}
	return nil
}

// TerminalKey identifies the merchant terminal, issued by T-Business.
type TerminalKey string

// NewTerminalKey validates a terminal identifier.
func NewTerminalKey(s string) (TerminalKey, error) {
	var errs validation.Errors
	errs.Add(validation.NonEmpty("TerminalKey", s))
	errs.Add(validation.MaxLen("TerminalKey", s, 20))
	if err := errs.OrNil(); err != nil {
		return "", err
	}
	return TerminalKey(s), nil
}

// OrderID is the merchant-side order identifier, unique per operation.
type OrderID string

// NewOrderID validates a merchant order identifier.
func NewOrderID(s string) (OrderID, error) {
	var errs validation.Errors
	errs.Add(validation.NonEmpty("OrderId", s))
	errs.Add(validation.MaxLen("OrderId", s, 36))
	if err := errs.OrNil(); err != nil {
		return "", err
	}
	return OrderID(s), nil
}

// GenerateOrderID produces a fresh UUID order identifier. A stable, unique
// order id is the caller's idempotency handle, so collisions matter.
func GenerateOrderID() OrderID {
	return OrderID(uuid.NewString())
}

// Token is the request signature, computed externally over the wire fields.
type Token string

// NewToken validates the presence of a signature token.
func NewToken(s string) (Token, error) {
	if err := validation.NonEmpty("Token", s); err != nil {
		return "", err
	}
	return Token(s), nil
}

// Description is the order description shown on the payment form.
type Description string

// NewDescription validates an order description.
func NewDescription(s string) (Description, error) {
	if err := validation.MaxLen("Description", s, 140); err != nil {
		return "", err
	}
	return Description(s), nil
}

// CustomerKey is the merchant-side customer identifier used for card binding.
type CustomerKey string

// NewCustomerKey validates a customer identifier.
func NewCustomerKey(s string) (CustomerKey, error) {
	var errs validation.Errors
	errs.Add(validation.NonEmpty("CustomerKey", s))
	errs.Add(validation.MaxLen("CustomerKey", s, 36))
	if err := errs.OrNil(); err != nil {
		return "", err
	}
	return CustomerKey(s), nil
}

// PayType selects one-stage (O) or two-stage (T) payment.
type PayType string

const (
	PayTypeOneStage PayType = "O"
	PayTypeTwoStage PayType = "T"
)

func (p PayType) IsValid() bool {
	return p == PayTypeOneStage || p == PayTypeTwoStage
}

// Language selects the payment form language.
type Language string

const (
	LanguageRu Language = "ru"
	LanguageEn Language = "en"
)

func (l Language) IsValid() bool {
	return l == LanguageRu || l == LanguageEn
}

// recurrentFlag is the only accepted value of the Recurrent wire field.
const recurrentFlag = "Y"

// checkURL validates an absolute http(s) URL for the given wire field.
func checkURL(field, raw string) *validation.FieldError {
	u, err := url.Parse(raw)
	if err != nil {
		return validation.NewFieldError(field, "must be a valid URL: %v", err)
	}
	if !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return validation.NewFieldError(field, "must be an absolute http(s) URL")
	}
	return nil
}

// redirectDueDateLayout is the gateway's date shape, e.g. 2016-08-31T12:28:00+03:00.
const redirectDueDateLayout = "2006-01-02T15:04:05-07:00"

// FormatRedirectDueDate renders a deadline in the gateway's expected layout.
func FormatRedirectDueDate(t time.Time) string {
	return t.Format(redirectDueDateLayout)
}

// checkEmail applies the gateway's light-weight shape check: bounded length
// with a single @ separating non-empty parts.
func checkEmail(field, s string) *validation.FieldError {
	if err := validation.MaxLen(field, s, 64); err != nil {
		return err
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 || strings.Count(s, "@") != 1 {
		return validation.NewFieldError(field, "must be a valid email address")
	}
	return nil
}
