package acquiring

// Taxation is the merchant's taxation system, FFD tag 1055.
type Taxation string

const (
	TaxationOsn              Taxation = "osn"
	TaxationUsnIncome        Taxation = "usn_income"
	TaxationUsnIncomeOutcome Taxation = "usn_income_outcome"
	TaxationEsn              Taxation = "esn"
	TaxationPatent           Taxation = "patent"
)

func (t Taxation) IsValid() bool {
	switch t {
	case TaxationOsn, TaxationUsnIncome, TaxationUsnIncomeOutcome, TaxationEsn, TaxationPatent:
		return true
	}
	return false
}

// Tax is the VAT rate of a receipt item, FFD tag 1199.
type Tax string

const (
	TaxNone   Tax = "none"
	TaxVat0   Tax = "vat0"
	TaxVat5   Tax = "vat5"
	TaxVat7   Tax = "vat7"
	TaxVat10  Tax = "vat10"
	TaxVat20  Tax = "vat20"
	TaxVat22  Tax = "vat22"
	TaxVat105 Tax = "vat105"
	TaxVat107 Tax = "vat107"
	TaxVat110 Tax = "vat110"
	TaxVat120 Tax = "vat120"
	TaxVat122 Tax = "vat122"
)

func (t Tax) IsValid() bool {
	switch t {
	case TaxNone, TaxVat0, TaxVat5, TaxVat7, TaxVat10, TaxVat20, TaxVat22,
		TaxVat105, TaxVat107, TaxVat110, TaxVat120, TaxVat122:
		return true
	}
	return false
}

// PaymentMethod is the settlement method of a receipt item, FFD tag 1214.
// The gateway defaults an empty value to full_payment.
type PaymentMethod string

const (
	PaymentMethodFullPrepayment PaymentMethod = "full_prepayment"
	PaymentMethodPrepayment     PaymentMethod = "prepayment"
	PaymentMethodAdvance        PaymentMethod = "advance"
	PaymentMethodFullPayment    PaymentMethod = "full_payment"
	PaymentMethodPartialPayment PaymentMethod = "partial_payment"
	PaymentMethodCredit         PaymentMethod = "credit"
	PaymentMethodCreditPayment  PaymentMethod = "credit_payment"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodFullPrepayment, PaymentMethodPrepayment, PaymentMethodAdvance,
		PaymentMethodFullPayment, PaymentMethodPartialPayment, PaymentMethodCredit,
		PaymentMethodCreditPayment:
		return true
	}
	return false
}

// PaymentObject105 is the settlement subject of an FFD 1.05 item, FFD tag 1212.
type PaymentObject105 string

const (
	PaymentObject105Commodity            PaymentObject105 = "commodity"
	PaymentObject105Excise               PaymentObject105 = "excise"
	PaymentObject105Job                  PaymentObject105 = "job"
	PaymentObject105Service              PaymentObject105 = "service"
	PaymentObject105GamblingBet          PaymentObject105 = "gambling_bet"
	PaymentObject105GamblingPrize        PaymentObject105 = "gambling_prize"
	PaymentObject105Lottery              PaymentObject105 = "lottery"
	PaymentObject105LotteryPrize         PaymentObject105 = "lottery_prize"
	PaymentObject105IntellectualActivity PaymentObject105 = "intellectual_activity"
	PaymentObject105Payment              PaymentObject105 = "payment"
	PaymentObject105AgentCommission      PaymentObject105 = "agent_commission"
	PaymentObject105Composite            PaymentObject105 = "composite"
	PaymentObject105Another              PaymentObject105 = "another"
)

func (o PaymentObject105) IsValid() bool {
	switch o {
	case PaymentObject105Commodity, PaymentObject105Excise, PaymentObject105Job,
		PaymentObject105Service, PaymentObject105GamblingBet, PaymentObject105GamblingPrize,
		PaymentObject105Lottery, PaymentObject105LotteryPrize, PaymentObject105IntellectualActivity,
		PaymentObject105Payment, PaymentObject105AgentCommission, PaymentObject105Composite,
		PaymentObject105Another:
		return true
	}
	return false
}

// PaymentObject12 is the settlement subject of an FFD 1.2 item, FFD tag 1212,
// table 101. The 1.2 set extends the 1.05 one with marking and insurance tokens.
type PaymentObject12 string

const (
	PaymentObject12Commodity                        PaymentObject12 = "commodity"
	PaymentObject12Excise                           PaymentObject12 = "excise"
	PaymentObject12Job                              PaymentObject12 = "job"
	PaymentObject12Service                          PaymentObject12 = "service"
	PaymentObject12GamblingBet                      PaymentObject12 = "gambling_bet"
	PaymentObject12GamblingPrize                    PaymentObject12 = "gambling_prize"
	PaymentObject12Lottery                          PaymentObject12 = "lottery"
	PaymentObject12LotteryPrize                     PaymentObject12 = "lottery_prize"
	PaymentObject12IntellectualActivity             PaymentObject12 = "intellectual_activity"
	PaymentObject12Payment                          PaymentObject12 = "payment"
	PaymentObject12AgentCommission                  PaymentObject12 = "agent_commission"
	PaymentObject12Contribution                     PaymentObject12 = "contribution"
	PaymentObject12PropertyRights                   PaymentObject12 = "property_rights"
	PaymentObject12Unrealization                    PaymentObject12 = "unrealization"
	PaymentObject12TaxReduction                     PaymentObject12 = "tax_reduction"
	PaymentObject12TradeFee                         PaymentObject12 = "trade_fee"
	PaymentObject12ResortTax                        PaymentObject12 = "resort_tax"
	PaymentObject12Pledge                           PaymentObject12 = "pledge"
	PaymentObject12IncomeDecrease                   PaymentObject12 = "income_decrease"
	PaymentObject12IePensionInsuranceWithoutPayment PaymentObject12 = "ie_pension_insurance_without_payments"
	PaymentObject12IePensionInsuranceWithPayments   PaymentObject12 = "ie_pension_insurance_with_payments"
	PaymentObject12IeMedicalInsuranceWithoutPayment PaymentObject12 = "ie_medical_insurance_without_payments"
	PaymentObject12IeMedicalInsuranceWithPayments   PaymentObject12 = "ie_medical_insurance_with_payments"
	PaymentObject12SocialInsurance                  PaymentObject12 = "social_insurance"
	PaymentObject12CasinoChips                      PaymentObject12 = "casino_chips"
	PaymentObject12AgentPayment                     PaymentObject12 = "agent_payment"
	PaymentObject12ExcisableGoodsWithoutMarkingCode PaymentObject12 = "excisable_goods_without_marking_code"
	PaymentObject12ExcisableGoodsWithMarkingCode    PaymentObject12 = "excisable_goods_with_marking_code"
	PaymentObject12GoodsWithoutMarkingCode          PaymentObject12 = "goods_without_marking_code"
	PaymentObject12GoodsWithMarkingCode             PaymentObject12 = "goods_with_marking_code"
	PaymentObject12Another                          PaymentObject12 = "another"
)

func (o PaymentObject12) IsValid() bool {
	switch o {
	case PaymentObject12Commodity, PaymentObject12Excise, PaymentObject12Job,
		PaymentObject12Service, PaymentObject12GamblingBet, PaymentObject12GamblingPrize,
		PaymentObject12Lottery, PaymentObject12LotteryPrize, PaymentObject12IntellectualActivity,
		PaymentObject12Payment, PaymentObject12AgentCommission, PaymentObject12Contribution,
		PaymentObject12PropertyRights, PaymentObject12Unrealization, PaymentObject12TaxReduction,
		PaymentObject12TradeFee, PaymentObject12ResortTax, PaymentObject12Pledge,
		PaymentObject12IncomeDecrease, PaymentObject12IePensionInsuranceWithoutPayment,
		PaymentObject12IePensionInsuranceWithPayments, PaymentObject12IeMedicalInsuranceWithoutPayment,
		PaymentObject12IeMedicalInsuranceWithPayments, PaymentObject12SocialInsurance,
		PaymentObject12CasinoChips, PaymentObject12AgentPayment,
		PaymentObject12ExcisableGoodsWithoutMarkingCode, PaymentObject12ExcisableGoodsWithMarkingCode,
		PaymentObject12GoodsWithoutMarkingCode, PaymentObject12GoodsWithMarkingCode,
		PaymentObject12Another:
		return true
	}
	return false
}

// RequiresMarking reports whether the settlement subject is a marked good,
// which makes the marking fields of the item mandatory.
func (o PaymentObject12) RequiresMarking() bool {
	return o == PaymentObject12GoodsWithMarkingCode || o == PaymentObject12ExcisableGoodsWithMarkingCode
}

// MeasurementUnit is the unit of measure of an FFD 1.2 item, FFD tag 2108.
// The wire tokens are the Cyrillic abbreviations the gateway documents.
type MeasurementUnit string

const (
	UnitPiece            MeasurementUnit = "шт"
	UnitGram             MeasurementUnit = "г"
	UnitKilogram         MeasurementUnit = "кг"
	UnitTon              MeasurementUnit = "т"
	UnitCentimeter       MeasurementUnit = "см"
	UnitDecimeter        MeasurementUnit = "дм"
	UnitMeter            MeasurementUnit = "м"
	UnitSquareCentimeter MeasurementUnit = "см2"
	UnitSquareDecimeter  MeasurementUnit = "дм2"
	UnitSquareMeter      MeasurementUnit = "м2"
	UnitMilliliter       MeasurementUnit = "мл"
	UnitLiter            MeasurementUnit = "л"
	UnitCubicMeter       MeasurementUnit = "м3"
	UnitKilowattHour     MeasurementUnit = "кВт*ч"
	UnitGigacalorie      MeasurementUnit = "Гкал"
	UnitDay              MeasurementUnit = "сут"
	UnitDayAlt           MeasurementUnit = "дн"
	UnitHour             MeasurementUnit = "ч"
	UnitMinute           MeasurementUnit = "мин"
	UnitSecond           MeasurementUnit = "с"
	UnitKilobyte         MeasurementUnit = "Кбайт"
	UnitMegabyte         MeasurementUnit = "Мбайт"
	UnitGigabyte         MeasurementUnit = "Гбайт"
	UnitTerabyte         MeasurementUnit = "Тбайт"
	UnitOther            MeasurementUnit = "-"
)

func (u MeasurementUnit) IsValid() bool {
	switch u {
	case UnitPiece, UnitGram, UnitKilogram, UnitTon, UnitCentimeter, UnitDecimeter,
		UnitMeter, UnitSquareCentimeter, UnitSquareDecimeter, UnitSquareMeter,
		UnitMilliliter, UnitLiter, UnitCubicMeter, UnitKilowattHour, UnitGigacalorie,
		UnitDay, UnitDayAlt, UnitHour, UnitMinute, UnitSecond,
		UnitKilobyte, UnitMegabyte, UnitGigabyte, UnitTerabyte, UnitOther:
		return true
	}
	return false
}

// MarkCodeType identifies the barcode format of a marking code.
type MarkCodeType string

const (
	MarkCodeUnknown MarkCodeType = "UNKNOWN"
	MarkCodeEan8    MarkCodeType = "EAN8"
	MarkCodeEan13   MarkCodeType = "EAN13"
	MarkCodeItf14   MarkCodeType = "ITF14"
	MarkCodeGs10    MarkCodeType = "GS10"
	MarkCodeGs1m    MarkCodeType = "GS1M"
	MarkCodeShort   MarkCodeType = "SHORT"
	MarkCodeFur     MarkCodeType = "FUR"
	MarkCodeEgais20 MarkCodeType = "EGAIS20"
	MarkCodeEgais30 MarkCodeType = "EGAIS30"
	MarkCodeRawcode MarkCodeType = "RAWCODE"
)

func (t MarkCodeType) IsValid() bool {
	switch t {
	case MarkCodeUnknown, MarkCodeEan8, MarkCodeEan13, MarkCodeItf14, MarkCodeGs10,
		MarkCodeGs1m, MarkCodeShort, MarkCodeFur, MarkCodeEgais20, MarkCodeEgais30,
		MarkCodeRawcode:
		return true
	}
	return false
}

// DocumentCode is the numeric identity-document code of the client, FFD tag 1245.
type DocumentCode string

const (
	DocumentRussianPassport        DocumentCode = "21"
	DocumentRussianForeignPassport DocumentCode = "22"
	DocumentTemporaryIdentity      DocumentCode = "26"
	DocumentBirthCertificate       DocumentCode = "27"
	DocumentOtherRussianIdentity   DocumentCode = "28"
	DocumentForeignPassport        DocumentCode = "31"
	DocumentOtherForeignIdentity   DocumentCode = "32"
	DocumentForeignStateDocument   DocumentCode = "33"
	DocumentResidencePermit        DocumentCode = "34"
	DocumentTemporaryResidence     DocumentCode = "35"
	DocumentStatelessnessReview    DocumentCode = "36"
	DocumentRefugeeCertificate     DocumentCode = "37"
	DocumentOtherStatelessIdentity DocumentCode = "38"
	DocumentCitizenshipApplication DocumentCode = "40"
)

func (c DocumentCode) IsValid() bool {
	switch c {
	case DocumentRussianPassport, DocumentRussianForeignPassport, DocumentTemporaryIdentity,
		DocumentBirthCertificate, DocumentOtherRussianIdentity, DocumentForeignPassport,
		DocumentOtherForeignIdentity, DocumentForeignStateDocument, DocumentResidencePermit,
		DocumentTemporaryResidence, DocumentStatelessnessReview, DocumentRefugeeCertificate,
		DocumentOtherStatelessIdentity, DocumentCitizenshipApplication:
		return true
	}
	return false
}

// AgentSign classifies the selling party's agent role, FFD tag 1222.
type AgentSign string

const (
	AgentSignBankPayingAgent    AgentSign = "bank_paying_agent"
	AgentSignBankPayingSubagent AgentSign = "bank_paying_subagent"
	AgentSignPayingAgent        AgentSign = "paying_agent"
	AgentSignPayingSubagent     AgentSign = "paying_subagent"
	AgentSignAttorney           AgentSign = "attorney"
	AgentSignCommissionAgent    AgentSign = "commission_agent"
	AgentSignAnother            AgentSign = "another"
)

func (s AgentSign) IsValid() bool {
	switch s {
	case AgentSignBankPayingAgent, AgentSignBankPayingSubagent, AgentSignPayingAgent,
		AgentSignPayingSubagent, AgentSignAttorney, AgentSignCommissionAgent, AgentSignAnother:
		return true
	}
	return false
}

// isBankAgent reports whether the sign mandates operator disclosure fields.
func (s AgentSign) isBankAgent() bool {
	return s == AgentSignBankPayingAgent || s == AgentSignBankPayingSubagent
}

// isPayingAgent reports whether the sign mandates receiver/transfer phones.
func (s AgentSign) isPayingAgent() bool {
	return s == AgentSignPayingAgent || s == AgentSignPayingSubagent
}
