package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alovak/payway"
	"github.com/alovak/payway/internal/randstr"
	"github.com/alovak/payway/models"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

// End-to-end direct debit flow: tokenize a bank account, create a customer,
// attach the account via payment setup and start a weekly schedule.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout))

	client, err := payway.New(logger, configFromEnv(), nil)
	if err != nil {
		return err
	}

	ctx := context.Background()

	account := &models.BankAccount{
		AccountName:   "John Doe",
		BSB:           "032-000",
		AccountNumber: "123456",
	}

	tokenResponse, fieldErrors, err := client.CreateBankAccountToken(ctx, account, "")
	if err != nil {
		return err
	}
	if fieldErrors != nil {
		return fmt.Errorf("tokenizing bank account: %s", fieldErrors.ToMessage())
	}
	fmt.Println("created bank account token:", tokenResponse.Token)

	customer := &models.Customer{
		CustomID:     randstr.Letters(10),
		CustomerName: "John Doe",
		EmailAddress: "johndoe@example.com",
		Token:        tokenResponse.Token,
	}

	created, fieldErrors, err := client.CreateCustomer(ctx, customer, "")
	if err != nil {
		return err
	}
	if fieldErrors != nil {
		return fmt.Errorf("creating customer: %s", fieldErrors.ToMessage())
	}
	fmt.Println("created customer:", created.CustomerNumber)

	schedule := &models.Schedule{
		Frequency:              "weekly",
		NextPaymentDate:        time.Now().Format("02 Jan 2006"),
		RegularPrincipalAmount: "10.00",
	}

	updated, fieldErrors, err := client.UpdateSchedule(ctx, created.CustomerNumber, schedule)
	if err != nil {
		return err
	}
	if fieldErrors != nil {
		return fmt.Errorf("updating schedule: %s", fieldErrors.ToMessage())
	}
	fmt.Println("next payment date:", updated.NextPaymentDate)

	return nil
}

func configFromEnv() *payway.Config {
	return &payway.Config{
		BaseURL:           os.Getenv("PAYWAY_API_BASE_URL"),
		MerchantID:        os.Getenv("PAYWAY_MERCHANT_ID"),
		BankAccountID:     os.Getenv("PAYWAY_BANK_ACCOUNT_ID"),
		SecretAPIKey:      os.Getenv("PAYWAY_SECRET_API_KEY"),
		PublishableAPIKey: os.Getenv("PAYWAY_PUBLISHABLE_API_KEY"),
	}
}
