package models

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Payment describes a single payment to process against a customer with an
// active payment setup. Amount is the string-encoded principal amount,
// e.g. "100.00".
type Payment struct {
	CustomerNumber  string
	TransactionType string
	Amount          string
	Currency        string
	OrderNumber     string
	IPAddress       string
}

func (p *Payment) ToWire() url.Values {
	v := url.Values{}
	setWire(v, "customerNumber", p.CustomerNumber)
	setWire(v, "transactionType", p.TransactionType)
	setWire(v, "principalAmount", p.Amount)
	setWire(v, "currency", p.Currency)
	setWire(v, "orderNumber", p.OrderNumber)
	setWire(v, "customerIpAddress", p.IPAddress)
	return v
}

// PaymentSetup is the stored payment method configuration on a customer:
// either a tokenized credit card or a direct-debit bank account.
type PaymentSetup struct {
	PaymentMethod string
	Stopped       bool
	CreditCard    *StoredCreditCard
	BankAccount   *StoredBankAccount
}

// StoredCreditCard is the masked view of a card held by the gateway.
type StoredCreditCard struct {
	MaskedCardNumber string `json:"maskedCardNumber"`
	ExpiryDateMonth  string `json:"expiryDateMonth"`
	ExpiryDateYear   string `json:"expiryDateYear"`
	CardholderName   string `json:"cardholderName"`
	CardScheme       string `json:"cardScheme"`
}

// StoredBankAccount is the direct-debit account view held by the gateway.
type StoredBankAccount struct {
	BSB           string `json:"bsb"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

type paymentSetupWire struct {
	PaymentMethod string             `json:"paymentMethod"`
	Stopped       bool               `json:"stopped"`
	CreditCard    *StoredCreditCard  `json:"creditCard"`
	BankAccount   *StoredBankAccount `json:"bankAccount"`
}

func (w *paymentSetupWire) toModel() *PaymentSetup {
	return &PaymentSetup{
		PaymentMethod: w.PaymentMethod,
		Stopped:       w.Stopped,
		CreditCard:    w.CreditCard,
		BankAccount:   w.BankAccount,
	}
}

func PaymentSetupFromWire(body []byte) (*PaymentSetup, error) {
	var wire paymentSetupWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("parsing payment setup: %w", err)
	}
	return wire.toModel(), nil
}
