package payway

// Transaction summary codes.
const TransactionApproved = "0"

var SummaryCodes = map[string]string{
	TransactionApproved: "Transaction Approved",
	"1":                 "Transaction Declined",
	"2":                 "Transaction Erred",
	"3":                 "Transaction Rejected",
}

// EFTResponseCodes maps bank response codes to their documented meaning.
var EFTResponseCodes = map[string]string{
	"00": "Approved or completed successfully",
	"01": "Refer to card issuer",
	"03": "Invalid merchant",
	"04": "Pick-up card",
	"05": "Do not honour",
	"08": "Honour with identification",
	"12": "Invalid transaction",
	"13": "Invalid amount",
	"14": "Invalid card number (no such number)",
	"30": "Format error",
	"36": "Restricted card",
	"41": "Lost card",
	"42": "No universal account",
	"43": "Stolen card, pick up",
	"51": "Not sufficient funds",
	"54": "Expired card",
	"61": "Exceeds withdrawal amount limits",
	"62": "Restricted card",
	"65": "Exceeds withdrawal frequency limit",
	"91": "Issuer or switch is inoperative",
	"92": "Financial institution or intermediate network facility cannot be found for routing",
	"94": "Duplicate transmission",
	"Q1": "Unknown Buyer",
	"Q2": "Transaction Pending",
	"Q3": "Payment Gateway Connection Error",
	"Q4": "Payment Gateway Unavailable",
	"Q5": "Invalid Transaction",
	"Q6": "Duplicate Transaction - requery to determine status",
	"QA": "Invalid parameters or Initialisation failed",
	"QB": "Order type not currently supported",
	"QC": "Invalid Order Type",
	"QD": "Invalid Payment Amount - Payment amount less than minimum/exceeds maximum allowed limit",
	"QE": "Internal Error",
	"QF": "Transaction Failed",
	"QG": "Unknown Customer Order Number",
	"QH": "Unknown Customer Username or Password",
	"QI": "Transaction incomplete - contact Westpac to confirm reconciliation",
	"QJ": "Invalid Client Certificate",
	"QK": "Unknown Customer Merchant",
	"QL": "Business Group not configured for customer",
	"QM": "Payment Instrument not configured for customer",
	"QN": "Configuration Error",
	"QO": "Missing Payment Instrument",
	"QP": "Missing Supplier Account",
	"QQ": `Invalid Credit Card \ Invalid Credit Card Verification Number`,
	"QR": "Transaction Retry",
	"QS": "Transaction Successful",
	"QT": "Invalid currency",
	"QU": "Unknown Customer IP Address",
	"QV": "Invalid Original Order Number specified for Refund, Refund amount exceeds capture amount, or Previous capture was not approved",
	"QW": "Invalid Reference Number",
	"QX": "Network Error has occurred",
	"QY": "Card Type Not Accepted",
	"QZ": "Zero value transaction",
}

// CVNResponseCodes maps card verification results.
var CVNResponseCodes = map[string]string{
	"M": "Matched",
	"N": "Not Matched",
	"P": "Not Processed",
	"S": "Suspicious",
	"U": "Unknown",
}

var CardSchemes = map[string]string{
	"AMEX":       "American Express",
	"BANKCARD":   "Bank Card",
	"DINERS":     "Diners Club",
	"MASTERCARD": "MasterCard",
	"VISA":       "VISA",
}

// Transaction statuses.
const (
	StatusApproved            = "approved"
	StatusApprovedConditional = "approved*"
	StatusPending             = "pending"
	StatusDeclined            = "declined"
	StatusVoided              = "voided"
	StatusSuspended           = "suspended"
)

// Transaction types.
const (
	TransactionTypePayment = "payment"
	TransactionTypeRefund  = "refund"
	TransactionTypePreAuth = "preAuth"
)

// Caller-facing payment method discriminators and the wire values the
// gateway expects for them.
const (
	PaymentMethodCard        = "card"
	PaymentMethodDirectDebit = "direct_debit"

	wireCreditCard  = "creditCard"
	wireBankAccount = "bankAccount"
)

var validPaymentMethods = []string{PaymentMethodCard, PaymentMethodDirectDebit}

// ResponseText resolves a bank response code to its documented text, or ""
// for an unknown code.
func ResponseText(code string) string {
	return EFTResponseCodes[code]
}
