package acquiring

import (
	"fmt"
	"regexp"

	"github.com/noxlovette/t-bank-sdk/validation"
)

// maxReceiptItems bounds the item array of a single receipt.
const maxReceiptItems = 100

// ItemFFD105 is a receipt line under fiscal-document format 1.05.
// Price and Amount are kopecks; Amount must equal Price times Quantity.
type ItemFFD105 struct {
	Name          string           `json:"Name"`
	Price         uint64           `json:"Price"`
	Quantity      uint64           `json:"Quantity"`
	Amount        uint64           `json:"Amount"`
	PaymentMethod PaymentMethod    `json:"PaymentMethod,omitempty"`
	PaymentObject PaymentObject105 `json:"PaymentObject,omitempty"`
	Tax           Tax              `json:"Tax"`
	Ean13         string           `json:"Ean13,omitempty"`
	AgentData     *AgentData       `json:"AgentData,omitempty"`
	SupplierInfo  *SupplierInfo    `json:"SupplierInfo,omitempty"`
}

// ItemFFD12 is a receipt line under fiscal-document format 1.2. It extends
// the 1.05 shape with the marking, customs and sectoral fields that format
// introduces; MeasurementUnit is mandatory.
type ItemFFD12 struct {
	Name               string             `json:"Name"`
	Price              uint64             `json:"Price"`
	Quantity           uint64             `json:"Quantity"`
	Amount             uint64             `json:"Amount"`
	PaymentMethod      PaymentMethod      `json:"PaymentMethod,omitempty"`
	PaymentObject      PaymentObject12    `json:"PaymentObject,omitempty"`
	Tax                Tax                `json:"Tax"`
	AgentData          *AgentData         `json:"AgentData,omitempty"`
	SupplierInfo       *SupplierInfo      `json:"SupplierInfo,omitempty"`
	UserData           string             `json:"UserData,omitempty"`
	Excise             string             `json:"Excise,omitempty"`
	CountryCode        string             `json:"CountryCode,omitempty"`
	DeclarationNumber  string             `json:"DeclarationNumber,omitempty"`
	MeasurementUnit    MeasurementUnit    `json:"MeasurementUnit"`
	MarkProcessingMode string             `json:"MarkProcessingMode,omitempty"`
	MarkCode           []MarkCode         `json:"MarkCode,omitempty"`
	MarkQuantity       *MarkQuantity      `json:"MarkQuantity,omitempty"`
	SectoralItemProps  []SectoralItemProp `json:"SectoralItemProps,omitempty"`
}

func indexedField(prefix string, i int) string {
	return fmt.Sprintf("%s[%d]", prefix, i)
}

// checkItemCore validates the fields both formats share.
func checkItemCore(field, name string, price, quantity, amount uint64, method PaymentMethod, tax Tax, errs *validation.Errors) {
	errs.Add(validation.NonEmpty(field+".Name", name))
	errs.Add(validation.MaxLen(field+".Name", name, 128))
	errs.Add(checkAmount(field+".Price", price))
	errs.Add(checkQuantity(field+".Quantity", quantity))
	errs.Add(checkAmount(field+".Amount", amount))
	if price != 0 && quantity != 0 && amount != price*quantity {
		errs.Addf(field+".Amount", "must equal Price*Quantity (%d*%d=%d), got %d", price, quantity, price*quantity, amount)
	}
	if method != "" && !method.IsValid() {
		errs.Addf(field+".PaymentMethod", "unknown payment method %q", string(method))
	}
	if !tax.IsValid() {
		errs.Addf(field+".Tax", "unknown tax rate %q", string(tax))
	}
}

func checkItem105(field string, it ItemFFD105, errs *validation.Errors) {
	checkItemCore(field, it.Name, it.Price, it.Quantity, it.Amount, it.PaymentMethod, it.Tax, errs)
	if it.PaymentObject != "" && !it.PaymentObject.IsValid() {
		errs.Addf(field+".PaymentObject", "unknown payment object %q", string(it.PaymentObject))
	}
	errs.Add(validation.MaxLen(field+".Ean13", it.Ean13, 300))
	checkAgentData(field, it.AgentData, it.SupplierInfo, errs)
}

var excisePattern = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)

func checkItem12(field string, it ItemFFD12, errs *validation.Errors) {
	checkItemCore(field, it.Name, it.Price, it.Quantity, it.Amount, it.PaymentMethod, it.Tax, errs)
	if it.PaymentObject != "" && !it.PaymentObject.IsValid() {
		errs.Addf(field+".PaymentObject", "unknown payment object %q", string(it.PaymentObject))
	}
	checkAgentData(field, it.AgentData, it.SupplierInfo, errs)

	if !it.MeasurementUnit.IsValid() {
		errs.Addf(field+".MeasurementUnit", "required for FFD 1.2, got %q", string(it.MeasurementUnit))
	}
	if it.Excise != "" && !excisePattern.MatchString(it.Excise) {
		errs.Addf(field+".Excise", "must be a non-negative sum with at most 8 integer and 2 fractional digits")
	}
	if it.CountryCode != "" {
		errs.Add(validation.Digits(field+".CountryCode", it.CountryCode, 3))
	}
	errs.Add(validation.MaxLen(field+".DeclarationNumber", it.DeclarationNumber, 32))

	if it.MarkProcessingMode != "" && it.MarkProcessingMode != markProcessingMode {
		errs.Addf(field+".MarkProcessingMode", "must be %q when present", markProcessingMode)
	}
	if it.PaymentObject.RequiresMarking() && len(it.MarkCode) == 0 {
		errs.Addf(field+".MarkCode", "required for payment object %q", string(it.PaymentObject))
	}
	for i, mc := range it.MarkCode {
		checkMarkCode(indexedField(field+".MarkCode", i), mc, errs)
	}
	checkMarkQuantity(field+".MarkQuantity", it.MarkQuantity, errs)
	checkSectoralProps(field+".SectoralItemProps", it.SectoralItemProps, errs)
}
