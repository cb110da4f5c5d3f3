package payway_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alovak/payway"
	"github.com/alovak/payway/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method         string
	path           string
	user           string
	idempotencyKey string
	contentType    string
	rawBody        string
	form           url.Values
}

// fakeGateway is an httptest server behind a chi router that records every
// request the client sends, so tests can assert on verbs, paths, auth
// schemes and wire bodies.
type fakeGateway struct {
	router   chi.Router
	server   *httptest.Server
	requests []recordedRequest
}

func newFakeGateway(t *testing.T) (*fakeGateway, *payway.Client) {
	gw := &fakeGateway{router: chi.NewRouter()}

	gw.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			user, _, _ := r.BasicAuth()

			rec := recordedRequest{
				method:         r.Method,
				path:           r.URL.Path,
				user:           user,
				idempotencyKey: r.Header.Get("Idempotency-Key"),
				contentType:    r.Header.Get("Content-Type"),
				rawBody:        string(raw),
			}
			rec.form, _ = url.ParseQuery(string(raw))
			gw.requests = append(gw.requests, rec)

			r.Body = io.NopCloser(strings.NewReader(string(raw)))
			next.ServeHTTP(w, r)
		})
	})

	gw.server = httptest.NewServer(gw.router)
	t.Cleanup(gw.server.Close)

	client, err := payway.New(testLogger(), &payway.Config{
		BaseURL:           gw.server.URL,
		MerchantID:        "TEST",
		BankAccountID:     "0000000A",
		SecretAPIKey:      "sk-secret",
		PublishableAPIKey: "pk-publishable",
	}, nil)
	require.NoError(t, err)

	return gw, client
}

func (g *fakeGateway) respond(method, pattern string, status int, body string) {
	g.router.MethodFunc(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

func (g *fakeGateway) last(t *testing.T) recordedRequest {
	require.NotEmpty(t, g.requests)
	return g.requests[len(g.requests)-1]
}

const customerBody = `{
	"customerNumber": 4817,
	"contact": {
		"customerName": "John Doe",
		"emailAddress": "johndoe@example.com",
		"sendEmailReceipts": false,
		"phoneNumber": "0343232323",
		"address": {
			"street1": "1 Test Street",
			"street2": "2 Test Street",
			"cityName": "Melbourne",
			"state": "VIC",
			"postalCode": "3000"
		}
	},
	"paymentSetup": {
		"paymentMethod": "creditCard",
		"stopped": false,
		"creditCard": {
			"maskedCardNumber": "456471...004",
			"expiryDateMonth": "02",
			"expiryDateYear": "29",
			"cardholderName": "Test Cardholder",
			"cardScheme": "VISA"
		}
	},
	"customFields": {"customField1": "crm-42"},
	"notes": "priority customer"
}`

const transactionBody = `{
	"transactionId": 1179985404,
	"receiptNumber": "1179985404",
	"status": "approved",
	"responseCode": "08",
	"responseText": "Honour with identification",
	"transactionType": "payment",
	"customerNumber": 4817,
	"customerName": "John Doe",
	"currency": "aud",
	"principalAmount": 100.00,
	"paymentAmount": 100.00,
	"paymentMethod": "creditCard",
	"orderNumber": "ord-1",
	"isVoidable": true,
	"isRefundable": false
}`

func TestCreateCustomer_WithCustomID(t *testing.T) {
	gw, client := newFakeGateway(t)
	gw.respond(http.MethodPut, "/customers/abc123", http.StatusOK, customerBody)

	customer := &models.Customer{
		CustomID:     "abc123",
		CustomerName: "John Doe",
		EmailAddress: "johndoe@example.com",
		Token:        "tok-1",
	}

	created, fieldErrors, err := client.CreateCustomer(context.Background(), customer, payway.NewIdempotencyKey())
	require.NoError(t, err)
	require.Nil(t, fieldErrors)

	req := gw.last(t)
	require.Equal(t, http.MethodPut, req.method)
	require.Equal(t, "/customers/abc123", req.path)
	require.Equal(t, "sk-secret", req.user)
	require.Equal(t, "application/x-www-form-urlencoded", req.contentType)

	// idempotency keys apply to POSTs only; the PUT is idempotent already
	require.Empty(t, req.idempotencyKey)

	require.Equal(t, "TEST", req.form.Get("merchantId"))
	require.Equal(t, "0000000A", req.form.Get("bankAccountId"))
	require.Equal(t, "tok-1", req.form.Get("singleUseTokenId"))
	require.Equal(t, "false", req.form.Get("sendEmailReceipts"))
	require.False(t, req.form.Has("customId"))

	require.Equal(t, "4817", created.CustomerNumber)
	require.Equal(t, "John Doe", created.CustomerName)
}

func TestCreateCustomer_GatewayAssignedNumber(t *testing.T) {
	gw, client := newFakeGateway(t)
	gw.respond(http.MethodPost, "/customers", http.StatusOK, customerBody)

	customer := &models.Customer{CustomerName: "John Doe"}

	created, fieldErrors, err := client.CreateCustomer(context.Background(), customer, "idem-1")
	require.NoError(t, err)
	require.Nil(t, fieldErrors)

	req := gw.last(t)
	require.Equal(t, http.MethodPost, req.method)
	require.Equal(t, "/customers", req.path)
	require.Equal(t, "sk-secret", req.user)
	require.Equal(t, "idem-1", req.idempotencyKey)

	require.Equal(t, "4817", created.CustomerNumber)
	require.Equal(t, "Melbourne", created.CityName)
	require.Equal(t, "priority customer", created.Notes)
	require.Equal(t, map[string]string{"customField1": "crm-42"}, created.CustomFields)

	require.NotNil(t, created.PaymentSetup)
	require.Equal(t, "creditCard", created.PaymentSetup.PaymentMethod)
	require.Equal(t, "VISA", created.PaymentSetup.CreditCard.CardScheme)

	// singleUseTokenId never comes back from the gateway
	require.Empty(t, created.Token)
}

func TestCreateCustomer_FieldErrors(t *testing.T) {
	gw, client := newFakeGateway(t)
	gw.respond(http.MethodPost, "/customers", http.StatusUnprocessableEntity,
		`{"data":[{"fieldName":"emailAddress","message":"Invalid email address","fieldValue":"nope"}]}`)

	created, fieldErrors, err := client.CreateCustomer(context.Background(), &models.Customer{}, "")
	require.NoError(t, err)
	require.Nil(t, created)
	require.Len(t, fieldErrors, 1)
	require.Equal(t, "emailAddress", fieldErrors[0].FieldName)
}

func TestGetCustomer(t *testing.T) {
	gw, client := newFakeGateway(t)
	gw.respond(http.MethodGet, "/customers/4817", http.StatusOK, customerBody)

	customer, fieldErrors, err := client.GetCustomer(context.Background(), "4817")
	require.NoError(t, err)
	require.Nil(t, fieldErrors)

	req := gw.last(t)
	require.Equal(t, http.MethodGet, req.method)
	require.Equal(t, "/customers/4817", req.path)
	require.Equal(t, "sk-secret", req.user)
	require.Empty(t, req.idempotencyKey)

	require.Equal(t, "johndoe@example.com", customer.EmailAddress)
	require.Equal(t, "3000", customer.PostalCode)
}

func TestCreateToken_AuthSchemes(t *testing.T) {
	gw, client := newFakeGateway(t)
	gw.respond(http.MethodPost, "/single-use-tokens", http.StatusOK,
		`{"singleUseTokenId":"tok-abc","paymentMethod":"creditCard"}`)
	gw.respond(http.MethodPost, "/customers", http.StatusOK, customerBody)

	t.Run("card uses publishable key", func(t *testing.T) {
		card := &models.Card{
			CardNumber:      "4564710000000004",
			CVN:             "847",
			CardholderName:  "Test Cardholder",
			ExpiryDateMonth: "02",
			ExpiryDateYear:  "29",
		}

		tokenResponse, fieldErrors, err := client.CreateCardToken(context.Background(), card, "")
		require.NoError(t, err)
		require.Nil(t, fieldErrors)
		require.Equal(t, "tok-abc", tokenResponse.Token)

		req := gw.last(t)
		require.Equal(t, "/single-use-tokens", req.path)
		require.Equal(t, "pk-publishable", req.user)
		require.Equal(t, "creditCard", req.form.Get("paymentMethod"))
		require.Equal(t, "4564710000000004", req.form.Get("cardNumber"))
	})

	t.Run("direct debit uses publishable key", func(t *testing.T) {
		account := &models.BankAccount{
			AccountName:   "John Doe",
			BSB:           "032-000",
			AccountNumber: "123456",
		}

		_, fieldErrors, err := client.CreateBankAccountToken(context.Background(), account, "idem-2")
		require.NoError(t, err)
		require.Nil(t, fieldErrors)

		req := gw.last(t)
		require.Equal(t, "pk-publishable", req.user)
		require.Equal(t, "bankAccount", req.form.Get("paymentMethod"))
		require.Equal(t, "032-000", req.form.Get("bsb"))
		require.Equal(t, "idem-2", req.idempotencyKey)
	})

	t.Run("create customer uses secret key", func(t *testing.T) {
		_, _, err := client.CreateCustomer(context.Background(), &models.Customer{}, "")
		require.NoError(t, err)
		require.Equal(t, "sk-secret", gw.last(t).user)
	})
}

func TestCreateToken_InvalidPaymentMethod(t *testing.T) {
	gw, client := newFakeGateway(t)

	card := &models.Card{CardNumber: "4564710000000004"}
	_, _, err := client.CreateToken(context.Background(), card, "paypal", "")

	var gatewayErr *payway.Error
	require.ErrorAs(t, err, &gatewayErr)
	require.Equal(t, payway.CodeInvalidPaymentMethod, gatewayErr.Code)
	require.Contains(t, gatewayErr.Message, "card, direct_debit")

	// rejected before any network activity
	require.Empty(t, gw.requests)
}

func TestProcessPayment(t *testing.T) {
	gw, client := newFakeGateway(t)
	gw.respond(http.MethodPost, "/transactions", http.StatusCreated, transactionBody)

	payment := &models.Payment{
		CustomerNumber:  "4817",
		TransactionType: payway.TransactionTypePayment,
		Amount:          "100.00",
		Currency:        "aud",
		OrderNumber:     "ord-1",
	}

	transaction, fieldErrors, err := client.ProcessPayment(context.Background(), payment, "idem-3")
	require.NoError(t, err)
	require.Nil(t, fieldErrors)

	req := gw.last(t)
	require.Equal(t, http.MethodPost, req.method)
	require.Equal(t, "/transactions", req.path)
	require.Equal(t, "sk-secret", req.user)
	require.Equal(t, "idem-3", req.idempotencyKey)
	require.Equal(t, "4817", req.form.Get("customerNumber"))
	require.Equal(t, "100.00", req.form.Get("principalAmount"))

	// unset optional fields are omitted, not sent empty
	require.False(t, req.form.Has("customerIpAddress"))

	require.Equal(t, "1179985404", transaction.TransactionID)
	require.Equal(t, payway.StatusApproved, transaction.Status)
	require.True(t, transaction.Approved())
	require.Equal(t, 100.00, transaction.PrincipalAmount)
	require.Equal(t, "Honour with identification", payway.ResponseText(transaction.ResponseCode))
}

func TestGetTransaction(t *testing.T) {
	gw, client := newFakeGateway(t)
	gw.respond(http.MethodGet, "/transactions/1179985404", http.StatusOK, transactionBody)

	transaction, fieldErrors, err := client.GetTransaction(context.Background(), "1179985404")
	require.NoError(t, err)
	require.Nil(t, fieldErrors)

	req := gw.last(t)
	require.Equal(t, http.MethodGet, req.method)
	require.Equal(t, "/transactions/1179985404", req.path)

	require.Equal(t, "1179985404", transaction.TransactionID)
	require.Equal(t, "4817", transaction.CustomerNumber)
}

func TestVoidTransaction(t *testing.T) {
	gw, client := newFakeGateway(t)
	gw.respond(http.MethodPost, "/transactions/1179985404/void", http.StatusOK,
		`{"transactionId":1179985404,"status":"voided","transactionType":"payment"}`)

	transaction, fieldErrors, err := client.VoidTransaction(context.Background(), "1179985404", "idem-4")
	require.NoError(t, err)
	require.Nil(t, fieldErrors)

	req := gw.last(t)
	require.Equal(t, http.MethodPost, req.method)
	require.Equal(t, "/transactions/1179985404/void", req.path)
	require.Equal(t, "idem-4", req.idempotencyKey)

	require.Equal(t, payway.StatusVoided, transaction.Status)
}

func TestRefundTransaction(t *testing.T) {
	t.Run("without order number", func(t *testing.T) {
		gw, client := newFakeGateway(t)
		gw.respond(http.MethodPost, "/transactions", http.StatusCreated,
			`{"transactionId":1179985405,"parentTransactionId":1179985404,"status":"approved","transactionType":"refund","principalAmount":50.00}`)

		transaction, fieldErrors, err := client.RefundTransaction(context.Background(), "T1", "50.00", "", "", "")
		require.NoError(t, err)
		require.Nil(t, fieldErrors)

		req := gw.last(t)
		require.Equal(t, "refund", req.form.Get("transactionType"))
		require.Equal(t, "T1", req.form.Get("parentTransactionId"))
		require.Equal(t, "50.00", req.form.Get("principalAmount"))
		require.False(t, req.form.Has("orderNumber"))
		require.False(t, req.form.Has("customerIpAddress"))

		require.Equal(t, payway.TransactionTypeRefund, transaction.TransactionType)
		require.Equal(t, "1179985404", transaction.ParentTransactionID)
	})

	t.Run("with order number and ip address", func(t *testing.T) {
		gw, client := newFakeGateway(t)
		gw.respond(http.MethodPost, "/transactions", http.StatusCreated,
			`{"transactionId":1179985406,"status":"approved","transactionType":"refund"}`)

		_, fieldErrors, err := client.RefundTransaction(context.Background(), "T1", "50.00", "ord-9", "10.0.0.1", "idem-5")
		require.NoError(t, err)
		require.Nil(t, fieldErrors)

		req := gw.last(t)
		require.Equal(t, "ord-9", req.form.Get("orderNumber"))
		require.Equal(t, "10.0.0.1", req.form.Get("customerIpAddress"))
		require.Equal(t, "idem-5", req.idempotencyKey)
	})
}

func TestUpdatePaymentSetup(t *testing.T) {
	gw, client := newFakeGateway(t)
	gw.respond(http.MethodPut, "/customers/4817/payment-setup", http.StatusOK,
		`{"paymentMethod":"bankAccount","stopped":false,"bankAccount":{"bsb":"032-000","accountNumber":"123456","accountName":"John Doe"}}`)

	setup, fieldErrors, err := client.UpdatePaymentSetup(context.Background(), "tok-abc", "4817")
	require.NoError(t, err)
	require.Nil(t, fieldErrors)

	req := gw.last(t)
	require.Equal(t, http.MethodPut, req.method)
	require.Equal(t, "/customers/4817/payment-setup", req.path)
	require.Equal(t, "sk-secret", req.user)
	require.Equal(t, "tok-abc", req.form.Get("singleUseTokenId"))
	require.Equal(t, "TEST", req.form.Get("merchantId"))
	require.Equal(t, "0000000A", req.form.Get("bankAccountId"))

	require.Equal(t, "bankAccount", setup.PaymentMethod)
	require.Equal(t, "032-000", setup.BankAccount.BSB)
}

func TestUpdateSchedule(t *testing.T) {
	gw, client := newFakeGateway(t)
	gw.respond(http.MethodPut, "/customers/4817/schedule", http.StatusOK,
		`{"frequency":"weekly","nextPaymentDate":"06 Sep 2026","regularPrincipalAmount":10.00}`)

	schedule := &models.Schedule{
		Frequency:              "weekly",
		NextPaymentDate:        "30 Aug 2026",
		RegularPrincipalAmount: "10.00",
	}

	updated, fieldErrors, err := client.UpdateSchedule(context.Background(), "4817", schedule)
	require.NoError(t, err)
	require.Nil(t, fieldErrors)

	req := gw.last(t)
	require.Equal(t, http.MethodPut, req.method)
	require.Equal(t, "/customers/4817/schedule", req.path)
	require.Equal(t, "weekly", req.form.Get("frequency"))
	require.Equal(t, "30 Aug 2026", req.form.Get("nextPaymentDate"))

	require.Equal(t, "06 Sep 2026", updated.NextPaymentDate)
	require.Equal(t, "10.00", updated.RegularPrincipalAmount)
}

func TestListMerchants(t *testing.T) {
	gw, client := newFakeGateway(t)
	gw.respond(http.MethodGet, "/merchants", http.StatusOK,
		`{"data":[{"merchantId":"TEST","merchantName":"Test Merchant","settlementBsb":"032-000","settlementAccountNumber":"123456"}]}`)

	merchants, fieldErrors, err := client.ListMerchants(context.Background())
	require.NoError(t, err)
	require.Nil(t, fieldErrors)
	require.Len(t, merchants, 1)
	require.Equal(t, "TEST", merchants[0].MerchantID)
	require.Equal(t, "032-000", merchants[0].SettlementBSB)
}

func TestListBankAccounts(t *testing.T) {
	gw, client := newFakeGateway(t)
	gw.respond(http.MethodGet, "/your-bank-accounts", http.StatusOK,
		`{"data":[{"bankAccountId":"0000000A","bsb":"032-000","accountNumber":"123456","accountName":"Settlement"}]}`)

	accounts, fieldErrors, err := client.ListBankAccounts(context.Background())
	require.NoError(t, err)
	require.Nil(t, fieldErrors)
	require.Len(t, accounts, 1)
	require.Equal(t, "0000000A", accounts[0].BankAccountID)
}

func TestProtocolError_EndToEnd(t *testing.T) {
	gw, client := newFakeGateway(t)
	gw.respond(http.MethodGet, "/transactions/1", http.StatusTooManyRequests, `{"data":[]}`)

	transaction, fieldErrors, err := client.GetTransaction(context.Background(), "1")
	require.Nil(t, transaction)
	require.Nil(t, fieldErrors)

	var gatewayErr *payway.Error
	require.ErrorAs(t, err, &gatewayErr)
	require.Equal(t, http.StatusTooManyRequests, gatewayErr.Status)
	require.Contains(t, gatewayErr.Message, "429 Client Error: Too Many Requests for url: "+gw.server.URL+"/transactions/1")
}
