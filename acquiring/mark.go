package acquiring

import (
	"time"

	"github.com/noxlovette/t-bank-sdk/validation"
)

// MarkCode is a product-traceability code for goods subject to mandatory
// marking, FFD tag 1163.
type MarkCode struct {
	MarkCodeType MarkCodeType `json:"MarkCodeType"`
	Value        string       `json:"Value"`
}

func checkMarkCode(prefix string, mc MarkCode, errs *validation.Errors) {
	if !mc.MarkCodeType.IsValid() {
		errs.Addf(prefix+".MarkCodeType", "unknown mark code type %q", string(mc.MarkCodeType))
	}
	errs.Add(validation.NonEmpty(prefix+".Value", mc.Value))
}

// MarkQuantity is the fractional-quantity attribute of a marked good:
// the numerator must be strictly below the denominator, FFD tags 1293/1294.
type MarkQuantity struct {
	Numerator   uint32 `json:"Numerator"`
	Denominator uint32 `json:"Denominator"`
}

func checkMarkQuantity(prefix string, mq *MarkQuantity, errs *validation.Errors) {
	if mq == nil {
		return
	}
	if mq.Numerator == 0 {
		errs.Addf(prefix+".Numerator", "must be greater than zero")
	}
	if mq.Denominator == 0 {
		errs.Addf(prefix+".Denominator", "must be greater than zero")
	}
	if mq.Numerator != 0 && mq.Denominator != 0 && mq.Numerator >= mq.Denominator {
		errs.Addf(prefix+".Numerator", "must be strictly less than Denominator (%d >= %d)", mq.Numerator, mq.Denominator)
	}
}

// markProcessingMode is the only value FFD tag 2102 admits.
const markProcessingMode = "0"

// SectoralItemProp is a sectoral settlement attribute mandated by the
// regulator for specific marked product groups, FFD tags 1262-1265.
type SectoralItemProp struct {
	FederalID string    `json:"FederalId"`
	Date      time.Time `json:"Date"`
	Number    string    `json:"Number"`
	Value     string    `json:"Value"`
}

func checkSectoralProps(prefix string, props []SectoralItemProp, errs *validation.Errors) {
	for i, p := range props {
		field := indexedField(prefix, i)
		errs.Add(validation.NonEmpty(field+".FederalId", p.FederalID))
		errs.Add(validation.NonEmpty(field+".Number", p.Number))
		errs.Add(validation.NonEmpty(field+".Value", p.Value))
		if p.Date.IsZero() {
			errs.Addf(field+".Date", "must be set")
		}
	}
}
