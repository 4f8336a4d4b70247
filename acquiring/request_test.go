package acquiring_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noxlovette/t-bank-sdk/acquiring"
	"github.com/noxlovette/t-bank-sdk/validation"
)

const testToken = "68711168852240a2f34b6a8b19d2cfbd296c7d2a6dff8b23eda6278985959346"

func TestRequestSeal(t *testing.T) {
	t.Run("seals a minimal request", func(t *testing.T) {
		req, err := acquiring.NewRequest("TBankTest", 140000, "21090", testToken).Seal()
		require.NoError(t, err)
		assert.Equal(t, acquiring.Amount(140000), req.Amount())
		assert.Equal(t, acquiring.OrderID("21090"), req.OrderID())
		assert.Equal(t, acquiring.TerminalKey("TBankTest"), req.TerminalKey())
	})

	t.Run("enumerates every envelope violation", func(t *testing.T) {
		_, err := acquiring.NewRequest(strings.Repeat("k", 21), 0, "", "").
			WithDescription(strings.Repeat("d", 141)).
			WithPayType(acquiring.PayType("X")).
			Seal()
		require.Error(t, err)

		var errs validation.Errors
		require.ErrorAs(t, err, &errs)
		fields := make([]string, 0, len(errs))
		for _, fe := range errs {
			fields = append(fields, fe.Field)
		}
		assert.Contains(t, fields, "TerminalKey")
		assert.Contains(t, fields, "Amount")
		assert.Contains(t, fields, "OrderId")
		assert.Contains(t, fields, "Token")
		assert.Contains(t, fields, "Description")
		assert.Contains(t, fields, "PayType")
	})

	t.Run("sub-shop amounts must sum to the request amount", func(t *testing.T) {
		_, err := acquiring.NewRequest("TBankTest", 140000, "21090", testToken).
			AddShop(acquiring.Shop{ShopCode: "700456", Amount: 100000}).
			AddShop(acquiring.Shop{ShopCode: "700457", Amount: 30000}).
			Seal()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Shops")

		_, err = acquiring.NewRequest("TBankTest", 140000, "21090", testToken).
			AddShop(acquiring.Shop{ShopCode: "700456", Amount: 100000}).
			AddShop(acquiring.Shop{ShopCode: "700457", Amount: 40000, Fee: "1200"}).
			Seal()
		assert.NoError(t, err)
	})

	t.Run("receipt electronic must equal the request amount", func(t *testing.T) {
		receipt, err := acquiring.NewFFD105(acquiring.TaxationOsn).
			WithEmail("a@test.ru").
			AddItem(validItem105()). // total 10000
			Seal()
		require.NoError(t, err)

		_, err = acquiring.NewRequest("TBankTest", 140000, "21090", testToken).
			WithReceipt(receipt).
			Seal()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Receipt.Payments.Electronic")

		_, err = acquiring.NewRequest("TBankTest", 10000, "21090", testToken).
			WithReceipt(receipt).
			Seal()
		assert.NoError(t, err)
	})

	t.Run("data map limits", func(t *testing.T) {
		big := acquiring.Data{}
		for r := 'a'; r < 'a'+21; r++ {
			big[string(r)] = "v"
		}
		_, err := acquiring.NewRequest("TBankTest", 140000, "21090", testToken).
			WithData(big).
			Seal()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at most 20 entries")

		_, err = acquiring.NewRequest("TBankTest", 140000, "21090", testToken).
			WithData(acquiring.Data{strings.Repeat("k", 21): "v"}).
			Seal()
		require.Error(t, err)

		_, err = acquiring.NewRequest("TBankTest", 140000, "21090", testToken).
			WithData(acquiring.Data{"k": strings.Repeat("v", 101)}).
			Seal()
		require.Error(t, err)

		// Reserved gateway keys may exceed the 20-character merchant cap.
		_, err = acquiring.NewRequest("TBankTest", 140000, "21090", testToken).
			WithData(acquiring.Data{acquiring.DataKeyOperationInitiatorType: "0"}).
			Seal()
		assert.NoError(t, err)
	})

	t.Run("initiator type and recurrent compatibility", func(t *testing.T) {
		// MIT tokens demand Recurrent=Y.
		_, err := acquiring.NewRequest("TBankTest", 140000, "21090", testToken).
			WithData(acquiring.Data{acquiring.DataKeyOperationInitiatorType: "R"}).
			Seal()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires Recurrent=Y")

		// Plain payments must not carry it.
		_, err = acquiring.NewRequest("TBankTest", 140000, "21090", testToken).
			WithRecurrent().
			WithData(acquiring.Data{acquiring.DataKeyOperationInitiatorType: "0"}).
			Seal()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "incompatible with Recurrent=Y")

		// Compatible pairs pass.
		_, err = acquiring.NewRequest("TBankTest", 140000, "21090", testToken).
			WithRecurrent().
			WithCustomerKey("customer-1").
			WithData(acquiring.Data{acquiring.DataKeyOperationInitiatorType: "1"}).
			Seal()
		assert.NoError(t, err)

		// Unknown tokens are their own violation.
		_, err = acquiring.NewRequest("TBankTest", 140000, "21090", testToken).
			WithData(acquiring.Data{acquiring.DataKeyOperationInitiatorType: "Q"}).
			Seal()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "OperationInitiatorType")
	})

	t.Run("rejects malformed URLs", func(t *testing.T) {
		_, err := acquiring.NewRequest("TBankTest", 140000, "21090", testToken).
			WithSuccessURL("not a url").
			Seal()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SuccessURL")
	})
}

func TestRequestWire(t *testing.T) {
	t.Run("serializes the documented envelope", func(t *testing.T) {
		due := time.Date(2016, 8, 31, 12, 28, 0, 0, time.FixedZone("MSK", 3*60*60))
		req, err := acquiring.NewRequest("TBankTest", 140000, "21090", testToken).
			WithDescription("Подарочная карта на 1000 рублей").
			WithLanguage(acquiring.LanguageRu).
			WithRedirectDueDate(due).
			WithData(acquiring.Data{"Phone": "+71234567890", "Email": "a@test.com"}).
			Seal()
		require.NoError(t, err)

		raw, err := json.Marshal(req)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		assert.Equal(t, "TBankTest", m["TerminalKey"])
		assert.Equal(t, float64(140000), m["Amount"])
		assert.Equal(t, "21090", m["OrderId"])
		assert.Equal(t, testToken, m["Token"])
		assert.Equal(t, "ru", m["Language"])
		assert.Equal(t, "2016-08-31T12:28:00+03:00", m["RedirectDueDate"])

		data, ok := m["DATA"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "+71234567890", data["Phone"])

		// Optional fields stay off the wire entirely.
		assert.NotContains(t, m, "Receipt")
		assert.NotContains(t, m, "Shops")
		assert.NotContains(t, m, "Recurrent")
		assert.NotContains(t, m, "CustomerKey")
	})

	t.Run("token follows the mandatory fields in the signed order", func(t *testing.T) {
		req, err := acquiring.NewRequest("TBankTest", 140000, "21090", testToken).Seal()
		require.NoError(t, err)

		raw, err := json.Marshal(req)
		require.NoError(t, err)

		s := string(raw)
		keys := []string{`"TerminalKey"`, `"Amount"`, `"OrderId"`, `"Token"`}
		last := -1
		for _, k := range keys {
			idx := strings.Index(s, k)
			require.Greater(t, idx, last, "field %s out of order", k)
			last = idx
		}
	})

	t.Run("recurrent serializes as Y", func(t *testing.T) {
		req, err := acquiring.NewRequest("TBankTest", 140000, "21090", testToken).
			WithRecurrent().
			WithCustomerKey("customer-1").
			WithData(acquiring.Data{acquiring.DataKeyOperationInitiatorType: "1"}).
			Seal()
		require.NoError(t, err)

		raw, err := json.Marshal(req)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"Recurrent":"Y"`)
	})
}

func TestResponseDecode(t *testing.T) {
	t.Run("decodes a full success body", func(t *testing.T) {
		body := `{"Success":true,"ErrorCode":"0","TerminalKey":"TBankTest","Status":"NEW","PaymentId":"3093639567","OrderId":"21090","Amount":140000,"PaymentURL":"https://pay.tbank.ru/new/fU1ppgqa"}`

		var resp acquiring.Response
		require.NoError(t, json.Unmarshal([]byte(body), &resp))

		assert.True(t, resp.Successful())
		assert.Equal(t, "NEW", resp.Status)
		assert.Equal(t, "3093639567", resp.PaymentID)
		assert.Equal(t, uint64(140000), resp.Amount)
		assert.Equal(t, "https://pay.tbank.ru/new/fU1ppgqa", resp.PaymentURL)
	})

	t.Run("recovers the error triplet from a partial body", func(t *testing.T) {
		body := `{"Success":false,"ErrorCode":"204","Message":"Неверные параметры"}`

		var resp acquiring.Response
		require.NoError(t, json.Unmarshal([]byte(body), &resp))

		assert.False(t, resp.Successful())
		code, message, details := resp.APIError()
		assert.Equal(t, "204", code)
		assert.Equal(t, "Неверные параметры", message)
		assert.Empty(t, details)
		assert.Empty(t, resp.PaymentID)
		assert.Empty(t, resp.PaymentURL)
	})
}
