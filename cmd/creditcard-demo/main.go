package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alovak/payway"
	"github.com/alovak/payway/internal/randstr"
	"github.com/alovak/payway/models"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

// End-to-end credit card flow against a sandbox gateway: tokenize a card,
// create a customer with the token attached, then process a payment.
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

	card := &models.Card{
		CardNumber:      "4564710000000004",
		CVN:             "847",
		CardholderName:  "Test Cardholder",
		ExpiryDateMonth: "02",
		ExpiryDateYear:  "29",
	}

	tokenResponse, fieldErrors, err := client.CreateCardToken(ctx, card, "")
	if err != nil {
		return err
	}
	if fieldErrors != nil {
		return fmt.Errorf("tokenizing card: %s", fieldErrors.ToMessage())
	}
	fmt.Println("created card token:", tokenResponse.Token)

	customer := &models.Customer{
		CustomID:     randstr.Letters(10),
		CustomerName: "John Doe",
		EmailAddress: "johndoe@example.com",
		PhoneNumber:  "0343232323",
		Street1:      "1 Test Street",
		Street2:      "2 Test Street",
		CityName:     "Melbourne",
		State:        "VIC",
		PostalCode:   "3000",
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

	payment := &models.Payment{
		CustomerNumber:  created.CustomerNumber,
		TransactionType: payway.TransactionTypePayment,
		Amount:          "100.00",
		Currency:        "aud",
		OrderNumber:     randstr.Letters(10),
	}

	transaction, fieldErrors, err := client.ProcessPayment(ctx, payment, payway.NewIdempotencyKey())
	if err != nil {
		return err
	}
	if fieldErrors != nil {
		return fmt.Errorf("processing payment: %s", fieldErrors.ToMessage())
	}
	fmt.Println("processed transaction:", transaction.TransactionID)
	fmt.Println("transaction status:", transaction.Status)

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
