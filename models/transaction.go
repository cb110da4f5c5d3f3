package models

import (
	"encoding/json"
	"fmt"
)

// Transaction is the gateway's record of a processed payment, refund or
// pre-authorisation. Immutable once returned; TransactionID is
// gateway-assigned.
type Transaction struct {
	TransactionID       string
	ParentTransactionID string
	ReceiptNumber       string
	Status              string
	ResponseCode        string
	ResponseText        string
	SummaryCode         string
	TransactionType     string
	CustomerNumber      string
	CustomerName        string
	Currency            string
	PrincipalAmount     float64
	SurchargeAmount     float64
	PaymentAmount       float64
	PaymentMethod       string
	OrderNumber         string
	CustomerIPAddress   string
	IsVoidable          bool
	IsRefundable        bool
	TransactionDateTime string
	SettlementDate      string
}

// Approved reports whether the transaction was approved, including
// conditionally approved ("approved*") transactions.
func (t *Transaction) Approved() bool {
	return t.Status == "approved" || t.Status == "approved*"
}

type transactionWire struct {
	TransactionID       flexString `json:"transactionId"`
	ParentTransactionID flexString `json:"parentTransactionId"`
	ReceiptNumber       string     `json:"receiptNumber"`
	Status              string     `json:"status"`
	ResponseCode        string     `json:"responseCode"`
	ResponseText        string     `json:"responseText"`
	SummaryCode         flexString `json:"summaryCode"`
	TransactionType     string     `json:"transactionType"`
	CustomerNumber      flexString `json:"customerNumber"`
	CustomerName        string     `json:"customerName"`
	Currency            string     `json:"currency"`
	PrincipalAmount     float64    `json:"principalAmount"`
	SurchargeAmount     float64    `json:"surchargeAmount"`
	PaymentAmount       float64    `json:"paymentAmount"`
	PaymentMethod       string     `json:"paymentMethod"`
	OrderNumber         string     `json:"orderNumber"`
	CustomerIPAddress   string     `json:"customerIpAddress"`
	IsVoidable          bool       `json:"isVoidable"`
	IsRefundable        bool       `json:"isRefundable"`
	TransactionDateTime string     `json:"transactionDateTime"`
	SettlementDate      string     `json:"settlementDate"`
}

func TransactionFromWire(body []byte) (*Transaction, error) {
	var wire transactionWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("parsing transaction: %w", err)
	}
	return &Transaction{
		TransactionID:       string(wire.TransactionID),
		ParentTransactionID: string(wire.ParentTransactionID),
		ReceiptNumber:       wire.ReceiptNumber,
		Status:              wire.Status,
		ResponseCode:        wire.ResponseCode,
		ResponseText:        wire.ResponseText,
		SummaryCode:         string(wire.SummaryCode),
		TransactionType:     wire.TransactionType,
		CustomerNumber:      string(wire.CustomerNumber),
		CustomerName:        wire.CustomerName,
		Currency:            wire.Currency,
		PrincipalAmount:     wire.PrincipalAmount,
		SurchargeAmount:     wire.SurchargeAmount,
		PaymentAmount:       wire.PaymentAmount,
		PaymentMethod:       wire.PaymentMethod,
		OrderNumber:         wire.OrderNumber,
		CustomerIPAddress:   wire.CustomerIPAddress,
		IsVoidable:          wire.IsVoidable,
		IsRefundable:        wire.IsRefundable,
		TransactionDateTime: wire.TransactionDateTime,
		SettlementDate:      wire.SettlementDate,
	}, nil
}
