package payway

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const (
	customersPath    = "/customers"
	transactionsPath = "/transactions"
	tokensPath       = "/single-use-tokens"
	bankAccountsPath = "/your-bank-accounts"
	merchantsPath    = "/merchants"
)

// Config is the immutable client configuration. All fields are required.
type Config struct {
	// BaseURL is the gateway REST API base, e.g.
	// https://api.payway.com.au/rest/v1
	BaseURL           string
	MerchantID        string
	BankAccountID     string
	SecretAPIKey      string
	PublishableAPIKey string
}

// Client connects to the gateway and performs customer, tokenization and
// transaction operations. It holds no mutable state beyond its
// configuration, so a single Client is safe for concurrent use.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger
}

// New validates the credentials and builds a client. A nil http.Client gets
// a default with a finite timeout; requests never hang indefinitely.
func New(logger *slog.Logger, config *Config, httpClient *http.Client) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "payway"))

	if err := validateCredentials(logger, config); err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	cfg := *config
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		config:     &cfg,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func validateCredentials(logger *slog.Logger, config *Config) error {
	if config == nil {
		logger.Error("payway API keys not found")
		return &Error{Code: CodeInvalidAPIKeys, Message: "PayWay API keys not found"}
	}
	if config.MerchantID == "" || config.BankAccountID == "" ||
		config.SecretAPIKey == "" || config.PublishableAPIKey == "" {
		if config.SecretAPIKey == "" || config.PublishableAPIKey == "" {
			logger.Error("payway API keys not found")
			return &Error{Code: CodeInvalidAPIKeys, Message: "PayWay API keys not found"}
		}
		logger.Error("merchant ID, bank account ID, secret API key, publishable API key are invalid")
		return &Error{Code: CodeInvalidAPICredentials, Message: "Invalid credentials"}
	}
	return nil
}

// NewIdempotencyKey returns a fresh value for the Idempotency-Key header.
// Supplying one on a POST is the only mechanism that makes a retried POST
// safe; the client itself never retries.
func NewIdempotencyKey() string {
	return uuid.New().String()
}
