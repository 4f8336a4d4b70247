package tbank_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tbank "github.com/noxlovette/t-bank-sdk"
	"github.com/noxlovette/t-bank-sdk/validation"
)

func TestErrorRendering(t *testing.T) {
	t.Run("api errors carry the gateway code", func(t *testing.T) {
		e := &tbank.Error{Kind: tbank.KindAPI, Code: "204", Message: "contract in a wrong state"}
		assert.Equal(t, "API error [204]: contract in a wrong state", e.Error())
	})

	t.Run("deserialize errors name the path", func(t *testing.T) {
		e := &tbank.Error{Kind: tbank.KindDeserialize, Path: "PaymentId", Message: "cannot decode JSON number into string"}
		assert.Equal(t, "DESERIALIZE error at PaymentId: cannot decode JSON number into string", e.Error())
	})

	t.Run("bare kinds still render", func(t *testing.T) {
		e := &tbank.Error{Kind: tbank.KindUnauthorized}
		assert.Equal(t, "UNAUTHORIZED error", e.Error())
	})
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset by peer")
	wrapped := fmt.Errorf("init payment: %w", &tbank.Error{Kind: tbank.KindNetwork, Message: cause.Error(), Err: cause})

	e, ok := tbank.AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, tbank.KindNetwork, e.Kind)
	assert.ErrorIs(t, wrapped, cause)

	_, ok = tbank.AsError(errors.New("unrelated"))
	assert.False(t, ok)
}

func TestNewValidationError(t *testing.T) {
	var violations validation.Errors
	violations.Addf("Amount", "must be greater than zero")

	e := tbank.NewValidationError(violations)
	assert.Equal(t, tbank.KindValidation, e.Kind)
	assert.False(t, e.Retryable())

	// The aggregate stays reachable through the taxonomy.
	var unwrapped validation.Errors
	require.ErrorAs(t, e, &unwrapped)
	assert.Len(t, unwrapped, 1)
}

func TestRetryable(t *testing.T) {
	retryable := []tbank.Kind{tbank.KindTimeout, tbank.KindNetwork, tbank.KindRateLimited, tbank.KindServer}
	for _, k := range retryable {
		assert.True(t, (&tbank.Error{Kind: k}).Retryable(), "kind %s", k)
	}

	terminal := []tbank.Kind{
		tbank.KindConfig, tbank.KindUnauthorized, tbank.KindForbidden,
		tbank.KindNotFound, tbank.KindAPI, tbank.KindDeserialize, tbank.KindValidation,
	}
	for _, k := range terminal {
		assert.False(t, (&tbank.Error{Kind: k}).Retryable(), "kind %s", k)
	}
}
