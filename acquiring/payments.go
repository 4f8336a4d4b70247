package acquiring

import (
	"encoding/json"

	"github.com/noxlovette/t-bank-sdk/validation"
)

// Payments is the payment breakdown of a receipt, FFD tags 1031/1081/1215-1217.
// When omitted the gateway records the full receipt total as electronic, which
// is why Receipt.Electronic falls back to the item-amount sum.
type Payments struct {
	Electronic     uint64
	Cash           uint64
	AdvancePayment uint64
	Credit         uint64
	Provision      uint64
}

// Total is the component sum, which must equal the receipt's item total.
func (p *Payments) Total() uint64 {
	return p.Electronic + p.Cash + p.AdvancePayment + p.Credit + p.Provision
}

func (p *Payments) MarshalJSON() ([]byte, error) {
	type wire struct {
		Electronic     uint64 `json:"Electronic"`
		Cash           uint64 `json:"Cash,omitempty"`
		AdvancePayment uint64 `json:"AdvancePayment,omitempty"`
		Credit         uint64 `json:"Credit,omitempty"`
		Provision      uint64 `json:"Provision,omitempty"`
	}
	return json.Marshal(wire{
		Electronic:     p.Electronic,
		Cash:           p.Cash,
		AdvancePayment: p.AdvancePayment,
		Credit:         p.Credit,
		Provision:      p.Provision,
	})
}

// checkPayments validates the breakdown components and their sum against the
// item total of the sealed receipt.
func checkPayments(p *Payments, itemTotal uint64, errs *validation.Errors) {
	if p == nil {
		return
	}
	errs.Add(checkAmount("Payments.Electronic", p.Electronic))
	errs.Add(checkSubAmount("Payments.Cash", p.Cash))
	errs.Add(checkSubAmount("Payments.AdvancePayment", p.AdvancePayment))
	errs.Add(checkSubAmount("Payments.Credit", p.Credit))
	errs.Add(checkSubAmount("Payments.Provision", p.Provision))
	if total := p.Total(); total != itemTotal {
		errs.Addf("Payments", "component sum %d must equal the item amount total %d", total, itemTotal)
	}
}
