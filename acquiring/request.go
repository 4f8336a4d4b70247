package acquiring

import (
	"encoding/json"
	"time"

	"github.com/noxlovette/t-bank-sdk/validation"
)

// RequestBuilder accumulates an Init request. Construct with NewRequest;
// mutable until Seal. The token is opaque to the SDK — it is computed by an
// external signer over the same field order the request serializes with.
type RequestBuilder struct {
	terminalKey     string
	amount          uint64
	orderID         string
	token           string
	description     string
	customerKey     string
	recurrent       bool
	payType         PayType
	language        Language
	notificationURL string
	successURL      string
	failURL         string
	redirectDueDate time.Time
	data            Data
	receipt         Receipt
	shops           []Shop
}

// NewRequest starts an Init request from its four mandatory fields.
func NewRequest(terminalKey string, amount uint64, orderID, token string) *RequestBuilder {
	return &RequestBuilder{
		terminalKey: terminalKey,
		amount:      amount,
		orderID:     orderID,
		token:       token,
	}
}

// WithDescription sets the order description shown on the payment form.
func (b *RequestBuilder) WithDescription(d string) *RequestBuilder {
	b.description = d
	return b
}

// WithCustomerKey sets the merchant-side customer identifier.
func (b *RequestBuilder) WithCustomerKey(k string) *RequestBuilder {
	b.customerKey = k
	return b
}

// WithRecurrent marks the payment as a parent recurring payment (Recurrent=Y).
func (b *RequestBuilder) WithRecurrent() *RequestBuilder {
	b.recurrent = true
	return b
}

// WithPayType selects one-stage or two-stage payment.
func (b *RequestBuilder) WithPayType(p PayType) *RequestBuilder {
	b.payType = p
	return b
}

// WithLanguage selects the payment form language.
func (b *RequestBuilder) WithLanguage(l Language) *RequestBuilder {
	b.language = l
	return b
}

// WithNotificationURL sets the merchant callback URL.
func (b *RequestBuilder) WithNotificationURL(u string) *RequestBuilder {
	b.notificationURL = u
	return b
}

// WithSuccessURL sets the success redirect URL.
func (b *RequestBuilder) WithSuccessURL(u string) *RequestBuilder {
	b.successURL = u
	return b
}

// WithFailURL sets the failure redirect URL.
func (b *RequestBuilder) WithFailURL(u string) *RequestBuilder {
	b.failURL = u
	return b
}

// WithRedirectDueDate sets the payment-link deadline.
func (b *RequestBuilder) WithRedirectDueDate(t time.Time) *RequestBuilder {
	b.redirectDueDate = t
	return b
}

// WithData attaches the DATA key/value object. Values containing reserved
// characters must be percent-encoded by the caller beforehand.
func (b *RequestBuilder) WithData(d Data) *RequestBuilder {
	b.data = d
	return b
}

// WithReceipt attaches a sealed fiscal receipt.
func (b *RequestBuilder) WithReceipt(r Receipt) *RequestBuilder {
	b.receipt = r
	return b
}

// AddShop appends a marketplace sub-shop entry.
func (b *RequestBuilder) AddShop(s Shop) *RequestBuilder {
	b.shops = append(b.shops, s)
	return b
}

// Seal validates the envelope and its cross-field invariants and returns the
// immutable request. On failure the returned validation.Errors lists every
// violation found, mirroring the gateway's own multi-faceted rejections.
func (b *RequestBuilder) Seal() (*Request, error) {
	var errs validation.Errors

	errs.Add(validation.NonEmpty("TerminalKey", b.terminalKey))
	errs.Add(validation.MaxLen("TerminalKey", b.terminalKey, 20))
	errs.Add(checkAmount("Amount", b.amount))
	errs.Add(validation.NonEmpty("OrderId", b.orderID))
	errs.Add(validation.MaxLen("OrderId", b.orderID, 36))
	errs.Add(validation.NonEmpty("Token", b.token))
	errs.Add(validation.MaxLen("Description", b.description, 140))
	errs.Add(validation.MaxLen("CustomerKey", b.customerKey, 36))

	if b.payType != "" && !b.payType.IsValid() {
		errs.Addf("PayType", "must be O or T, got %q", string(b.payType))
	}
	if b.language != "" && !b.language.IsValid() {
		errs.Addf("Language", "must be ru or en, got %q", string(b.language))
	}
	if b.notificationURL != "" {
		errs.Add(checkURL("NotificationURL", b.notificationURL))
	}
	if b.successURL != "" {
		errs.Add(checkURL("SuccessURL", b.successURL))
	}
	if b.failURL != "" {
		errs.Add(checkURL("FailURL", b.failURL))
	}

	checkData(b.data, &errs)
	checkInitiatorRecurrent(b.data, b.recurrent, &errs)
	checkShops(b.shops, b.amount, &errs)

	if b.receipt != nil && b.receipt.Electronic() != b.amount {
		errs.Addf("Receipt.Payments.Electronic", "must equal the request amount %d, got %d", b.amount, b.receipt.Electronic())
	}

	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	req := &Request{
		terminalKey:     TerminalKey(b.terminalKey),
		amount:          Amount(b.amount),
		orderID:         OrderID(b.orderID),
		token:           Token(b.token),
		description:     Description(b.description),
		customerKey:     CustomerKey(b.customerKey),
		recurrent:       b.recurrent,
		payType:         b.payType,
		language:        b.language,
		notificationURL: b.notificationURL,
		successURL:      b.successURL,
		failURL:         b.failURL,
		redirectDueDate: b.redirectDueDate,
		receipt:         b.receipt,
		shops:           append([]Shop(nil), b.shops...),
	}
	if len(b.data) > 0 {
		req.data = make(Data, len(b.data))
		for k, v := range b.data {
			req.data[k] = v
		}
	}
	return req, nil
}

// Request is a sealed, immutable Init request ready for dispatch.
type Request struct {
	terminalKey     TerminalKey
	amount          Amount
	orderID         OrderID
	token           Token
	description     Description
	customerKey     CustomerKey
	recurrent       bool
	payType         PayType
	language        Language
	notificationURL string
	successURL      string
	failURL         string
	redirectDueDate time.Time
	data            Data
	receipt         Receipt
	shops           []Shop
}

// Amount is the payment sum in kopecks.
func (r *Request) Amount() Amount { return r.amount }

// OrderID is the merchant order identifier of the request.
func (r *Request) OrderID() OrderID { return r.orderID }

// TerminalKey is the merchant terminal of the request.
func (r *Request) TerminalKey() TerminalKey { return r.terminalKey }

// MarshalJSON renders the documented wire shape. Field order matches the
// byte sequence the external signer computes the token over, so it must not
// be reordered.
func (r *Request) MarshalJSON() ([]byte, error) {
	type wire struct {
		TerminalKey     TerminalKey `json:"TerminalKey"`
		Amount          Amount      `json:"Amount"`
		OrderID         OrderID     `json:"OrderId"`
		Token           Token       `json:"Token"`
		Description     Description `json:"Description,omitempty"`
		CustomerKey     CustomerKey `json:"CustomerKey,omitempty"`
		Recurrent       string      `json:"Recurrent,omitempty"`
		PayType         PayType     `json:"PayType,omitempty"`
		Language        Language    `json:"Language,omitempty"`
		NotificationURL string      `json:"NotificationURL,omitempty"`
		SuccessURL      string      `json:"SuccessURL,omitempty"`
		FailURL         string      `json:"FailURL,omitempty"`
		RedirectDueDate string      `json:"RedirectDueDate,omitempty"`
		Data            Data        `json:"DATA,omitempty"`
		Receipt         Receipt     `json:"Receipt,omitempty"`
		Shops           []Shop      `json:"Shops,omitempty"`
	}
	w := wire{
		TerminalKey:     r.terminalKey,
		Amount:          r.amount,
		OrderID:         r.orderID,
		Token:           r.token,
		Description:     r.description,
		CustomerKey:     r.customerKey,
		PayType:         r.payType,
		Language:        r.language,
		NotificationURL: r.notificationURL,
		SuccessURL:      r.successURL,
		FailURL:         r.failURL,
		Data:            r.data,
		Shops:           r.shops,
	}
	if r.recurrent {
		w.Recurrent = recurrentFlag
	}
	if !r.redirectDueDate.IsZero() {
		w.RedirectDueDate = FormatRedirectDueDate(r.redirectDueDate)
	}
	if r.receipt != nil {
		w.Receipt = r.receipt
	}
	return json.Marshal(w)
}
