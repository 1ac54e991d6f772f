package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"

	GatewayRazorpay    = "razorpay"
	GatewayMercadoPago = "mercadopago"
	GatewayMock        = "mock"
)

// Config is the runtime configuration of the billing service. Values come from
// the environment; cmd/api auto-loads a .env file first.
type Config struct {
	HTTPPort int `envconfig:"PORT" default:"8080"`

	// Store
	StoreDriver string `envconfig:"STORE_DRIVER" default:"dynamodb"`
	DatabaseDSN string `envconfig:"DATABASE_DSN"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`

	AppointmentsTable string `envconfig:"DDB_APPOINTMENTS_TABLE" default:"appointments"`
	PaymentsTable     string `envconfig:"DDB_PAYMENTS_TABLE" default:"payments"`
	CommissionTable   string `envconfig:"DDB_COMMISSION_TABLE" default:"commission_settings"`
	HospitalsTable    string `envconfig:"DDB_HOSPITALS_TABLE" default:"hospitals"`
	UsersTable        string `envconfig:"DDB_USERS_TABLE" default:"users"`
	ContactsTable     string `envconfig:"DDB_CONTACTS_TABLE" default:"contacts"`

	// Payment gateway
	GatewayProvider        string        `envconfig:"PAYMENT_GATEWAY" default:"razorpay"`
	GatewayTimeout         time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
	RazorpayKeyID          string        `envconfig:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret      string        `envconfig:"RAZORPAY_KEY_SECRET"`
	MercadoPagoAccessToken string        `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	MockGatewaySecret      string        `envconfig:"MOCK_GATEWAY_SECRET" default:"mock_secret"`

	// Auth
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// Events and locking; empty URLs disable the feature.
	RabbitURL           string        `envconfig:"RABBIT_URL"`
	BillingExchange     string        `envconfig:"BILLING_EXCHANGE" default:"billing.exchange"`
	RedisAddr           string        `envconfig:"REDIS_ADDR"`
	RedisPassword       string        `envconfig:"REDIS_PASSWORD"`
	RedisDB             int           `envconfig:"REDIS_DB" default:"0"`
	VerificationLockTTL time.Duration `envconfig:"VERIFICATION_LOCK_TTL" default:"30s"`
	VerificationLockCap int           `envconfig:"VERIFICATION_LOCK_CAPACITY" default:"4096"`

	DirectoryCacheSize int           `envconfig:"DIRECTORY_CACHE_SIZE" default:"1024"`
	DirectoryCacheTTL  time.Duration `envconfig:"DIRECTORY_CACHE_TTL" default:"1m"`

	// Pending-order reaper; zero interval disables the background loop.
	ReaperInterval   time.Duration `envconfig:"REAPER_INTERVAL" default:"5m"`
	PendingOrderTTL  time.Duration `envconfig:"PENDING_ORDER_TTL" default:"30m"`
	AnalyticsZone    string        `envconfig:"ANALYTICS_TIMEZONE" default:"UTC"`
	OTelEnabled      bool          `envconfig:"OTEL_ENABLED" default:"false"`
	OTelEndpoint     string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"otel-collector:4317"`
	OTelServiceName  string        `envconfig:"OTEL_SERVICE_NAME" default:"billing-service"`
	Environment      string        `envconfig:"ENV" default:"dev"`
	SwaggerEnabled   bool          `envconfig:"SWAGGER_ENABLED" default:"true"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	c.GatewayProvider = strings.ToLower(strings.TrimSpace(c.GatewayProvider))
	return c, c.Validate()
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreDynamoDB:
	case StorePostgres, StoreSQLite:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for STORE_DRIVER=%s", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.GatewayProvider {
	case GatewayRazorpay:
		if c.RazorpayKeyID == "" || c.RazorpayKeySecret == "" {
			return fmt.Errorf("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET are required")
		}
	case GatewayMercadoPago:
		if c.MercadoPagoAccessToken == "" {
			return fmt.Errorf("MERCADOPAGO_ACCESS_TOKEN is required")
		}
	case GatewayMock:
	default:
		return fmt.Errorf("unsupported PAYMENT_GATEWAY %q", c.GatewayProvider)
	}

	if c.GatewayTimeout <= 0 {
		return fmt.Errorf("GATEWAY_TIMEOUT must be positive")
	}
	if c.PendingOrderTTL <= 0 {
		return fmt.Errorf("PENDING_ORDER_TTL must be positive")
	}
	if _, err := time.LoadLocation(c.AnalyticsZone); err != nil {
		return fmt.Errorf("invalid ANALYTICS_TIMEZONE: %w", err)
	}
	return nil
}

// Location returns the analytics zone. Validate has already checked it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.AnalyticsZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
