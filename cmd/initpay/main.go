// Command initpay initiates a demo payment against the configured gateway
// environment: it assembles an FFD 1.05 receipt and an Init request, sends
// them, and logs the classified outcome.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	tbank "github.com/noxlovette/t-bank-sdk"
	"github.com/noxlovette/t-bank-sdk/acquiring"
	"github.com/noxlovette/t-bank-sdk/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting init payment demo",
		"environment", config.ParseEnvironment(cfg.Env),
		"terminal_key", cfg.TerminalKey,
	)

	client, err := tbank.New(cfg, logger)
	if err != nil {
		logger.Error("failed to construct client", "error", err)
		os.Exit(1)
	}

	receipt, err := acquiring.NewFFD105(acquiring.TaxationOsn).
		WithEmail("customer@example.com").
		AddItem(acquiring.ItemFFD105{
			Name:     "Подарочная карта на 1000 рублей",
			Price:    100000,
			Quantity: 1,
			Amount:   100000,
			Tax:      acquiring.TaxVat20,
		}).
		Seal()
	if err != nil {
		logger.Error("receipt validation failed", "error", err)
		os.Exit(1)
	}

	orderID := acquiring.GenerateOrderID()
	// The token comes from an external signer in a real integration.
	req, err := acquiring.NewRequest(cfg.TerminalKey, 100000, string(orderID), os.Getenv("TBANK_REQUEST_TOKEN")).
		WithDescription("Подарочная карта на 1000 рублей").
		WithReceipt(receipt).
		Seal()
	if err != nil {
		logger.Error("request validation failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Init(ctx, req)
	if err != nil {
		if classified, ok := tbank.AsError(err); ok {
			logger.Error("payment initiation failed",
				"kind", classified.Kind,
				"code", classified.Code,
				"retryable", classified.Retryable(),
				"error", classified,
			)
		} else {
			logger.Error("payment initiation failed", "error", err)
		}
		os.Exit(1)
	}

	logger.Info("payment initiated",
		"order_id", orderID,
		"payment_id", resp.PaymentID,
		"status", resp.Status,
		"payment_url", resp.PaymentURL,
	)
}
