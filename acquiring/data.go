package acquiring

import (
	"github.com/noxlovette/t-bank-sdk/validation"
)

// Well-known DATA keys. Arbitrary merchant keys are also accepted within
// the size limits; values with reserved characters must be percent-encoded
// by the caller before insertion — the SDK does not re-encode them.
const (
	DataKeyOperationInitiatorType = "OperationInitiatorType"
	DataKeyDevice                 = "Device"
	DataKeyDeviceOs               = "DeviceOs"
	DataKeyDeviceWebView          = "DeviceWebView"
	DataKeyDeviceBrowser          = "DeviceBrowser"
	DataKeyTinkoffPayWeb          = "TinkoffPayWeb"
	DataKeyPhone                  = "Phone"
	DataKeyEmail                  = "Email"
)

const (
	maxDataEntries  = 20
	maxDataKeyLen   = 20
	maxDataValueLen = 100
)

// Data is the DATA wire object: flat key/value string pairs with extra
// operation parameters.
type Data map[string]string

// reservedDataKeys are gateway-defined keys exempt from the merchant
// key-length limit. OperationInitiatorType alone is 22 characters.
var reservedDataKeys = map[string]struct{}{
	DataKeyOperationInitiatorType: {},
	DataKeyDevice:                 {},
	DataKeyDeviceOs:               {},
	DataKeyDeviceWebView:          {},
	DataKeyDeviceBrowser:          {},
	DataKeyTinkoffPayWeb:          {},
	DataKeyPhone:                  {},
	DataKeyEmail:                  {},
}

func checkData(d Data, errs *validation.Errors) {
	if len(d) > maxDataEntries {
		errs.Addf("DATA", "must contain at most %d entries, got %d", maxDataEntries, len(d))
	}
	for k, v := range d {
		errs.Add(validation.NonEmpty("DATA key", k))
		if _, reserved := reservedDataKeys[k]; !reserved {
			errs.Add(validation.MaxLen("DATA key "+k, k, maxDataKeyLen))
		}
		errs.Add(validation.MaxLen("DATA."+k, v, maxDataValueLen))
	}
	if oit, ok := d[DataKeyOperationInitiatorType]; ok {
		errs.Add(validation.OneOf("DATA.OperationInitiatorType", oit, "0", "1", "2", "R", "I", "D", "N"))
	}
}

// initiatorNeedsRecurrent maps each OperationInitiatorType token to whether
// the request must carry Recurrent=Y. A mismatched pair is the gateway's
// error 1126, mirrored here so the request fails before it is sent.
var initiatorNeedsRecurrent = map[string]bool{
	"0": false, // plain payment
	"1": true,  // CIT credential-capture
	"2": false, // CIT credential-on-file
	"R": true,  // MIT COF recurring
	"I": true,  // MIT COF installment
	"D": true,  // MIT COF delayed charge
	"N": true,  // MIT COF no-show
}

func checkInitiatorRecurrent(d Data, recurrent bool, errs *validation.Errors) {
	oit, ok := d[DataKeyOperationInitiatorType]
	if !ok {
		return
	}
	needs, known := initiatorNeedsRecurrent[oit]
	if !known {
		return // token validity reported by checkData
	}
	if needs && !recurrent {
		errs.Addf("DATA.OperationInitiatorType", "value %q requires Recurrent=Y", oit)
	}
	if !needs && recurrent {
		errs.Addf("DATA.OperationInitiatorType", "value %q is incompatible with Recurrent=Y", oit)
	}
}
