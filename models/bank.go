package models

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// BankAccount holds raw direct-debit account details for tokenization.
// Transient like Card: never logged, never stored.
type BankAccount struct {
	AccountName   string
	BSB           string
	AccountNumber string
}

func (b *BankAccount) ToWire() url.Values {
	v := url.Values{}
	setWire(v, "accountName", b.AccountName)
	setWire(v, "bsb", b.BSB)
	setWire(v, "accountNumber", b.AccountNumber)
	return v
}

// SettlementAccount is one of the merchant's own bank accounts, as listed
// by the your-bank-accounts endpoint.
type SettlementAccount struct {
	BankAccountID string `json:"bankAccountId"`
	BSB           string `json:"bsb"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

// SettlementAccountsFromWire parses the gateway's bank account listing,
// which wraps the accounts in a data array.
func SettlementAccountsFromWire(body []byte) ([]SettlementAccount, error) {
	var wire struct {
		Data []SettlementAccount `json:"data"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("parsing bank accounts: %w", err)
	}
	return wire.Data, nil
}
