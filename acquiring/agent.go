package acquiring

import (
	"fmt"

	"github.com/noxlovette/t-bank-sdk/validation"
)

// AgentData carries the agent-scheme disclosure fields of a receipt item.
// Which fields are mandatory depends on AgentSign; see checkAgentData.
type AgentData struct {
	AgentSign       AgentSign `json:"AgentSign"`
	OperationName   string    `json:"OperationName,omitempty"`
	Phones          []string  `json:"Phones,omitempty"`
	ReceiverPhones  []string  `json:"ReceiverPhones,omitempty"`
	TransferPhones  []string  `json:"TransferPhones,omitempty"`
	OperatorName    string    `json:"OperatorName,omitempty"`
	OperatorAddress string    `json:"OperatorAddress,omitempty"`
	OperatorInn     string    `json:"OperatorInn,omitempty"`
}

// SupplierInfo identifies the supplier on whose behalf the agent sells.
// Mandatory whenever AgentData carries an agent sign.
type SupplierInfo struct {
	Phones []string `json:"Phones,omitempty"`
	Name   string   `json:"Name"`
	Inn    string   `json:"Inn"`
}

// supplierNameBudget is the total character allowance for the supplier name,
// shared with its phones: each phone consumes its own length plus four.
const supplierNameBudget = 239

func checkPhones(field string, phones []string, errs *validation.Errors) {
	for i, p := range phones {
		errs.Add(validation.Phone(fmt.Sprintf("%s[%d]", field, i), p))
	}
}

func checkInn(field, inn string, errs *validation.Errors) {
	if len(inn) != 10 && len(inn) != 12 {
		errs.Addf(field, "must be 10 or 12 digits")
		return
	}
	errs.Add(validation.Digits(field, inn, 0))
}

// checkAgentData enforces the agent-sign conditional-requirements table:
// bank agents must disclose the transfer operator, paying agents must
// disclose receiver and transfer phones, and every agent sign requires
// supplier info alongside it.
func checkAgentData(prefix string, agent *AgentData, supplier *SupplierInfo, errs *validation.Errors) {
	if agent == nil {
		return
	}
	if !agent.AgentSign.IsValid() {
		errs.Addf(prefix+".AgentData.AgentSign", "unknown agent sign %q", string(agent.AgentSign))
		return
	}

	checkPhones(prefix+".AgentData.Phones", agent.Phones, errs)
	checkPhones(prefix+".AgentData.ReceiverPhones", agent.ReceiverPhones, errs)
	checkPhones(prefix+".AgentData.TransferPhones", agent.TransferPhones, errs)
	errs.Add(validation.MaxLen(prefix+".AgentData.OperationName", agent.OperationName, 24))
	errs.Add(validation.MaxLen(prefix+".AgentData.OperatorName", agent.OperatorName, 64))
	errs.Add(validation.MaxLen(prefix+".AgentData.OperatorAddress", agent.OperatorAddress, 243))

	if agent.AgentSign.isBankAgent() {
		if agent.OperationName == "" {
			errs.Addf(prefix+".AgentData.OperationName", "required for agent sign %q", string(agent.AgentSign))
		}
		if agent.OperatorName == "" {
			errs.Addf(prefix+".AgentData.OperatorName", "required for agent sign %q", string(agent.AgentSign))
		}
		if agent.OperatorAddress == "" {
			errs.Addf(prefix+".AgentData.OperatorAddress", "required for agent sign %q", string(agent.AgentSign))
		}
		if agent.OperatorInn == "" {
			errs.Addf(prefix+".AgentData.OperatorInn", "required for agent sign %q", string(agent.AgentSign))
		} else {
			checkInn(prefix+".AgentData.OperatorInn", agent.OperatorInn, errs)
		}
		if len(agent.Phones) == 0 {
			errs.Addf(prefix+".AgentData.Phones", "required for agent sign %q", string(agent.AgentSign))
		}
	}

	if agent.AgentSign.isPayingAgent() {
		if len(agent.Phones) == 0 {
			errs.Addf(prefix+".AgentData.Phones", "required for agent sign %q", string(agent.AgentSign))
		}
		if len(agent.ReceiverPhones) == 0 {
			errs.Addf(prefix+".AgentData.ReceiverPhones", "required for agent sign %q", string(agent.AgentSign))
		}
		if len(agent.TransferPhones) == 0 {
			errs.Addf(prefix+".AgentData.TransferPhones", "required for agent sign %q", string(agent.AgentSign))
		}
	}

	if supplier == nil {
		errs.Addf(prefix+".SupplierInfo", "required when AgentData carries an agent sign")
		return
	}
	checkSupplierInfo(prefix+".SupplierInfo", supplier, errs)
}

func checkSupplierInfo(prefix string, s *SupplierInfo, errs *validation.Errors) {
	errs.Add(validation.NonEmpty(prefix+".Name", s.Name))
	checkPhones(prefix+".Phones", s.Phones, errs)
	if s.Inn == "" {
		errs.Addf(prefix+".Inn", "must not be empty")
	} else {
		checkInn(prefix+".Inn", s.Inn, errs)
	}

	// The 239-character name allowance is shared with the phones: each phone
	// eats its own length plus four.
	budget := supplierNameBudget
	for _, p := range s.Phones {
		budget -= len(p) + 4
	}
	if budget < 0 {
		budget = 0
	}
	errs.Add(validation.MaxLen(prefix+".Name", s.Name, budget))
}
