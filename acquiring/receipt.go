package acquiring

import (
	"encoding/json"
	"time"

	"github.com/noxlovette/t-bank-sdk/validation"
)

// FfdVersion is the fiscal-document format the receipt conforms to.
type FfdVersion string

const (
	FfdVersion105 FfdVersion = "1.05"
	FfdVersion12  FfdVersion = "1.2"
)

// Receipt is a sealed fiscal receipt in exactly one of the two supported
// fiscal-document formats. Only values produced by FFD105Builder.Seal or
// FFD12Builder.Seal implement it, so an unvalidated receipt can never be
// attached to a request.
type Receipt interface {
	json.Marshaler

	// Version reports the fiscal-document format of the receipt.
	Version() FfdVersion
	// Electronic is the electronic payment component, which must equal the
	// outer request amount. Receipts without an explicit breakdown fall back
	// to the item total, matching the gateway default.
	Electronic() uint64

	sealedReceipt()
}

// ClientInfo identifies the buyer on an FFD 1.2 receipt, FFD tags 1243-1254.
type ClientInfo struct {
	Birthdate    string       `json:"Birthdate,omitempty"`
	Citizenship  string       `json:"Citizenship,omitempty"`
	DocumentCode DocumentCode `json:"DocumentCode,omitempty"`
	DocumentData string       `json:"DocumentData,omitempty"`
	Address      string       `json:"Address,omitempty"`
}

const birthdateLayout = "02.01.2006"

func checkClientInfo(ci *ClientInfo, errs *validation.Errors) {
	if ci == nil {
		return
	}
	if ci.Birthdate != "" {
		if _, err := time.Parse(birthdateLayout, ci.Birthdate); err != nil {
			errs.Addf("ClientInfo.Birthdate", "must be in DD.MM.YYYY format")
		}
	}
	if ci.Citizenship != "" {
		errs.Add(validation.Digits("ClientInfo.Citizenship", ci.Citizenship, 3))
	}
	if ci.DocumentCode != "" && !ci.DocumentCode.IsValid() {
		errs.Addf("ClientInfo.DocumentCode", "unknown document code %q", string(ci.DocumentCode))
	}
	errs.Add(validation.MaxLen("ClientInfo.Address", ci.Address, 256))
}

// checkContact enforces the email/phone rule shared by both formats:
// exactly one of the two must be present.
func checkContact(email, phone string, errs *validation.Errors) {
	if email == "" && phone == "" {
		errs.Addf("Email", "either Email or Phone must be present")
		return
	}
	if email != "" && phone != "" {
		errs.Addf("Email", "only one of Email and Phone may be present")
	}
	if email != "" {
		errs.Add(checkEmail("Email", email))
	}
	if phone != "" {
		errs.Add(validation.Phone("Phone", phone))
		errs.Add(validation.MaxLen("Phone", phone, 64))
	}
}

func checkTaxation(t Taxation, errs *validation.Errors) {
	if !t.IsValid() {
		errs.Addf("Taxation", "unknown taxation system %q", string(t))
	}
}

// itemTotal105 sums item amounts. Individual overflow is reported per item;
// the sum itself fits uint64 comfortably (100 items * 2^32).
func itemTotal105(items []ItemFFD105) uint64 {
	var total uint64
	for _, it := range items {
		total += it.Amount
	}
	return total
}

func itemTotal12(items []ItemFFD12) uint64 {
	var total uint64
	for _, it := range items {
		total += it.Amount
	}
	return total
}

// FFD105Builder accumulates an FFD 1.05 receipt. The zero value is not
// usable; construct with NewFFD105. The builder is mutable until Seal.
type FFD105Builder struct {
	taxation Taxation
	email    string
	phone    string
	items    []ItemFFD105
	payments *Payments
}

// NewFFD105 starts an FFD 1.05 receipt for the given taxation system.
func NewFFD105(taxation Taxation) *FFD105Builder {
	return &FFD105Builder{taxation: taxation}
}

// WithEmail sets the customer email, FFD tag 1008.
func (b *FFD105Builder) WithEmail(email string) *FFD105Builder {
	b.email = email
	return b
}

// WithPhone sets the customer phone in +{digits} format, FFD tag 1008.
func (b *FFD105Builder) WithPhone(phone string) *FFD105Builder {
	b.phone = phone
	return b
}

// AddItem appends a receipt line. Validation happens at Seal.
func (b *FFD105Builder) AddItem(item ItemFFD105) *FFD105Builder {
	b.items = append(b.items, item)
	return b
}

// WithPayments sets an explicit payment breakdown.
func (b *FFD105Builder) WithPayments(p Payments) *FFD105Builder {
	b.payments = &p
	return b
}

// Seal validates every rule of the receipt and returns the immutable value.
// On failure the returned validation.Errors lists all violations found.
func (b *FFD105Builder) Seal() (*FFD105, error) {
	var errs validation.Errors
	checkTaxation(b.taxation, &errs)
	checkContact(b.email, b.phone, &errs)
	if len(b.items) == 0 {
		errs.Addf("Items", "must contain at least one item")
	}
	if len(b.items) > maxReceiptItems {
		errs.Addf("Items", "must contain at most %d items, got %d", maxReceiptItems, len(b.items))
	}
	for i, it := range b.items {
		checkItem105(indexedField("Items", i), it, &errs)
	}
	total := itemTotal105(b.items)
	checkPayments(b.payments, total, &errs)
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	r := &FFD105{
		taxation: b.taxation,
		email:    b.email,
		phone:    b.phone,
		items:    append([]ItemFFD105(nil), b.items...),
		total:    total,
	}
	if b.payments != nil {
		p := *b.payments
		r.payments = &p
	}
	return r, nil
}

// FFD105 is a sealed fiscal receipt in format 1.05.
type FFD105 struct {
	taxation Taxation
	email    string
	phone    string
	items    []ItemFFD105
	payments *Payments
	total    uint64
}

func (r *FFD105) Version() FfdVersion { return FfdVersion105 }

func (r *FFD105) Electronic() uint64 {
	if r.payments != nil {
		return r.payments.Electronic
	}
	return r.total
}

// Total is the sum of all item amounts in kopecks.
func (r *FFD105) Total() uint64 { return r.total }

func (r *FFD105) MarshalJSON() ([]byte, error) {
	type wire struct {
		FfdVersion FfdVersion   `json:"FfdVersion"`
		Email      string       `json:"Email,omitempty"`
		Phone      string       `json:"Phone,omitempty"`
		Taxation   Taxation     `json:"Taxation"`
		Items      []ItemFFD105 `json:"Items"`
		Payments   *Payments    `json:"Payments,omitempty"`
	}
	return json.Marshal(wire{
		FfdVersion: FfdVersion105,
		Email:      r.email,
		Phone:      r.phone,
		Taxation:   r.taxation,
		Items:      r.items,
		Payments:   r.payments,
	})
}

func (r *FFD105) sealedReceipt() {}

// FFD12Builder accumulates an FFD 1.2 receipt. Construct with NewFFD12;
// mutable until Seal.
type FFD12Builder struct {
	taxation    Taxation
	email       string
	phone       string
	clientInfo  *ClientInfo
	customer    string
	customerInn string
	items       []ItemFFD12
	payments    *Payments
}

// NewFFD12 starts an FFD 1.2 receipt for the given taxation system.
func NewFFD12(taxation Taxation) *FFD12Builder {
	return &FFD12Builder{taxation: taxation}
}

// WithEmail sets the customer email, FFD tag 1008.
func (b *FFD12Builder) WithEmail(email string) *FFD12Builder {
	b.email = email
	return b
}

// WithPhone sets the customer phone in +{digits} format, FFD tag 1008.
func (b *FFD12Builder) WithPhone(phone string) *FFD12Builder {
	b.phone = phone
	return b
}

// WithClientInfo attaches buyer identity data, mandatory for some marked goods.
func (b *FFD12Builder) WithClientInfo(ci ClientInfo) *FFD12Builder {
	b.clientInfo = &ci
	return b
}

// WithCustomer sets the client identifier (email or phone) and INN,
// FFD tags 1227/1228.
func (b *FFD12Builder) WithCustomer(customer, inn string) *FFD12Builder {
	b.customer = customer
	b.customerInn = inn
	return b
}

// AddItem appends a receipt line. Validation happens at Seal.
func (b *FFD12Builder) AddItem(item ItemFFD12) *FFD12Builder {
	b.items = append(b.items, item)
	return b
}

// WithPayments sets an explicit payment breakdown.
func (b *FFD12Builder) WithPayments(p Payments) *FFD12Builder {
	b.payments = &p
	return b
}

// Seal validates every rule of the receipt and returns the immutable value.
// On failure the returned validation.Errors lists all violations found.
func (b *FFD12Builder) Seal() (*FFD12, error) {
	var errs validation.Errors
	checkTaxation(b.taxation, &errs)
	checkContact(b.email, b.phone, &errs)
	checkClientInfo(b.clientInfo, &errs)
	if b.customerInn != "" {
		checkInn("CustomerInn", b.customerInn, &errs)
	}
	if len(b.items) == 0 {
		errs.Addf("Items", "must contain at least one item")
	}
	if len(b.items) > maxReceiptItems {
		errs.Addf("Items", "must contain at most %d items, got %d", maxReceiptItems, len(b.items))
	}
	for i, it := range b.items {
		checkItem12(indexedField("Items", i), it, &errs)
	}
	total := itemTotal12(b.items)
	checkPayments(b.payments, total, &errs)
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	r := &FFD12{
		taxation:    b.taxation,
		email:       b.email,
		phone:       b.phone,
		customer:    b.customer,
		customerInn: b.customerInn,
		items:       append([]ItemFFD12(nil), b.items...),
		total:       total,
	}
	if b.clientInfo != nil {
		ci := *b.clientInfo
		r.clientInfo = &ci
	}
	if b.payments != nil {
		p := *b.payments
		r.payments = &p
	}
	return r, nil
}

// FFD12 is a sealed fiscal receipt in format 1.2.
type FFD12 struct {
	taxation    Taxation
	email       string
	phone       string
	clientInfo  *ClientInfo
	customer    string
	customerInn string
	items       []ItemFFD12
	payments    *Payments
	total       uint64
}

func (r *FFD12) Version() FfdVersion { return FfdVersion12 }

func (r *FFD12) Electronic() uint64 {
	if r.payments != nil {
		return r.payments.Electronic
	}
	return r.total
}

// Total is the sum of all item amounts in kopecks.
func (r *FFD12) Total() uint64 { return r.total }

func (r *FFD12) MarshalJSON() ([]byte, error) {
	type wire struct {
		FfdVersion  FfdVersion  `json:"FfdVersion"`
		ClientInfo  *ClientInfo `json:"ClientInfo,omitempty"`
		Email       string      `json:"Email,omitempty"`
		Phone       string      `json:"Phone,omitempty"`
		Taxation    Taxation    `json:"Taxation"`
		Customer    string      `json:"Customer,omitempty"`
		CustomerInn string      `json:"CustomerInn,omitempty"`
		Items       []ItemFFD12 `json:"Items"`
		Payments    *Payments   `json:"Payments,omitempty"`
	}
	return json.Marshal(wire{
		FfdVersion:  FfdVersion12,
		ClientInfo:  r.clientInfo,
		Email:       r.email,
		Phone:       r.phone,
		Taxation:    r.taxation,
		Customer:    r.customer,
		CustomerInn: r.customerInn,
		Items:       r.items,
		Payments:    r.payments,
	})
}

func (r *FFD12) sealedReceipt() {}
