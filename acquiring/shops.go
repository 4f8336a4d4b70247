package acquiring

import (
	"github.com/noxlovette/t-bank-sdk/validation"
)

// Shop is a marketplace sub-merchant entry of a split payment. ShopCode is
// the Submerchant_ID issued at shop registration; Fee is the marketplace
// commission in kopecks, rendered as a string per the gateway schema.
type Shop struct {
	ShopCode string `json:"ShopCode"`
	Amount   uint64 `json:"Amount"`
	Name     string `json:"Name,omitempty"`
	Fee      string `json:"Fee,omitempty"`
}

// checkShops validates each entry and the split-sum invariant: sub-shop
// amounts must add up to the request amount exactly.
func checkShops(shops []Shop, requestAmount uint64, errs *validation.Errors) {
	if len(shops) == 0 {
		return
	}
	var total uint64
	for i, s := range shops {
		field := indexedField("Shops", i)
		errs.Add(validation.NonEmpty(field+".ShopCode", s.ShopCode))
		errs.Add(checkAmount(field+".Amount", s.Amount))
		if s.Fee != "" {
			errs.Add(validation.Digits(field+".Fee", s.Fee, 0))
		}
		total += s.Amount
	}
	if total != requestAmount {
		errs.Addf("Shops", "amount sum %d must equal the request amount %d", total, requestAmount)
	}
}
