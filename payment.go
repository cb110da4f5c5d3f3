package payway

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/alovak/payway/models"
)

// Tokenizable is a payment instrument that can be exchanged for a
// single-use token: models.Card or models.BankAccount.
type Tokenizable interface {
	ToWire() url.Values
}

// CreateToken exchanges raw card or bank account details for a single-use
// token. paymentMethod must be "card" or "direct_debit"; anything else
// fails before any network call.
//
// This is the only operation authenticated with the publishable key, so a
// caller holding just that key can tokenize without access to the secret
// key.
func (c *Client) CreateToken(ctx context.Context, instrument Tokenizable, paymentMethod, idempotencyKey string) (*models.TokenResponse, FieldErrors, error) {
	var wireMethod string
	switch paymentMethod {
	case PaymentMethodCard:
		wireMethod = wireCreditCard
	case PaymentMethodDirectDebit:
		wireMethod = wireBankAccount
	default:
		return nil, nil, &Error{
			Code: CodeInvalidPaymentMethod,
			Message: fmt.Sprintf("Invalid payment method. Must be one of %s",
				strings.Join(validPaymentMethods, ", ")),
		}
	}

	data := instrument.ToWire()
	data.Set("paymentMethod", wireMethod)

	c.logger.Info("sending create token request")

	resp, err := c.postRequest(ctx, tokensPath, data, c.config.PublishableAPIKey, idempotencyKey)
	if err != nil {
		return nil, nil, err
	}

	fieldErrors, err := validateResponse(resp)
	if err != nil {
		return nil, nil, err
	}
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	token, err := models.TokenResponseFromWire(resp.body)
	if err != nil {
		return nil, nil, err
	}

	return token, nil, nil
}

// CreateCardToken tokenizes a credit card.
func (c *Client) CreateCardToken(ctx context.Context, card *models.Card, idempotencyKey string) (*models.TokenResponse, FieldErrors, error) {
	return c.CreateToken(ctx, card, PaymentMethodCard, idempotencyKey)
}

// CreateBankAccountToken tokenizes a direct-debit bank account.
func (c *Client) CreateBankAccountToken(ctx context.Context, account *models.BankAccount, idempotencyKey string) (*models.TokenResponse, FieldErrors, error) {
	return c.CreateToken(ctx, account, PaymentMethodDirectDebit, idempotencyKey)
}

// ProcessPayment processes an individual payment against a customer with an
// active payment setup.
func (c *Client) ProcessPayment(ctx context.Context, payment *models.Payment, idempotencyKey string) (*models.Transaction, FieldErrors, error) {
	data := payment.ToWire()

	c.logger.Info("sending process payment request")

	resp, err := c.postRequest(ctx, transactionsPath, data, c.config.SecretAPIKey, idempotencyKey)
	if err != nil {
		return nil, nil, err
	}

	fieldErrors, err := validateResponse(resp)
	if err != nil {
		return nil, nil, err
	}
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	transaction, err := models.TransactionFromWire(resp.body)
	if err != nil {
		return nil, nil, err
	}

	return transaction, nil, nil
}

// UpdatePaymentSetup attaches a previously created single-use token to an
// existing customer, replacing the stored card or bank account.
func (c *Client) UpdatePaymentSetup(ctx context.Context, token, customerID string) (*models.PaymentSetup, FieldErrors, error) {
	data := url.Values{}
	data.Set("singleUseTokenId", token)
	data.Set("merchantId", c.config.MerchantID)
	data.Set("bankAccountId", c.config.BankAccountID)

	resp, err := c.putRequest(ctx, customersPath+"/"+customerID+"/payment-setup", data)
	if err != nil {
		return nil, nil, err
	}

	fieldErrors, err := validateResponse(resp)
	if err != nil {
		return nil, nil, err
	}
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	setup, err := models.PaymentSetupFromWire(resp.body)
	if err != nil {
		return nil, nil, err
	}

	return setup, nil, nil
}

// UpdateSchedule sets the customer's regular payment schedule.
func (c *Client) UpdateSchedule(ctx context.Context, customerID string, schedule *models.Schedule) (*models.Schedule, FieldErrors, error) {
	resp, err := c.putRequest(ctx, customersPath+"/"+customerID+"/schedule", schedule.ToWire())
	if err != nil {
		return nil, nil, err
	}

	fieldErrors, err := validateResponse(resp)
	if err != nil {
		return nil, nil, err
	}
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	updated, err := models.ScheduleFromWire(resp.body)
	if err != nil {
		return nil, nil, err
	}

	return updated, nil, nil
}
