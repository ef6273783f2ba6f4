package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ERPConstants are the integration-specific ids embedded in every write to the ERP.
type ERPConstants struct {
	ClientID      int64
	OrgID         int64
	AcctSchemaID  int64
	DocTypeID     int64
	GLCategoryID  int64
	CurrencyID    int64
	ElementID     int64
	AccountType   string // Type tag of accounts registered by the gateway
	PostingType   string // "A" = actual
	TimezoneName  string
	TimeoutPerReq time.Duration
}

// AccountClassification drives the dashboard revenue/expense split.
type AccountClassification struct {
	RevenuePrefix string
	RevenueCodes  []string
	ExpensePrefix string
	ExpenseCodes  []string
}

// Config holds application configuration.
type Config struct {
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	ERPBaseURL string
	ERP        ERPConstants

	CleanupEmptyHeader bool
	RejectDuplicates   bool
	Classification     AccountClassification

	RedisURL      string
	SessionTTL    time.Duration
	SessionSecret string

	DatabaseURL   string
	RunMigrations bool

	CORSAllowedOrigins []string
	LoginRateLimit     string // ulule/limiter formatted rate, e.g. "10-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8081")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "gl-gateway")

	viper.SetDefault("ERP_BASE_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("ERP_TIMEOUT", "30s")
	viper.SetDefault("ERP_TIMEZONE", "UTC")
	viper.SetDefault("ERP_CLIENT_ID", 11)
	viper.SetDefault("ERP_ORG_ID", 11)
	viper.SetDefault("ERP_ACCT_SCHEMA_ID", 101)
	viper.SetDefault("ERP_DOC_TYPE_ID", 115)
	viper.SetDefault("ERP_GL_CATEGORY_ID", 1000000)
	viper.SetDefault("ERP_CURRENCY_ID", 100)
	viper.SetDefault("ERP_ELEMENT_ID", 105)
	viper.SetDefault("ERP_ACCOUNT_TYPE", "A")
	viper.SetDefault("ERP_POSTING_TYPE", "A")

	viper.SetDefault("JOURNAL_CLEANUP_EMPTY_HEADER", true)
	viper.SetDefault("JOURNAL_REJECT_DUPLICATES", false)
	viper.SetDefault("REVENUE_ACCOUNT_PREFIX", "7")
	viper.SetDefault("REVENUE_ACCOUNT_CODES", "700000,700100,700200")
	viper.SetDefault("EXPENSE_ACCOUNT_PREFIX", "6")
	viper.SetDefault("EXPENSE_ACCOUNT_CODES", "600000,600100,600200")

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("SESSION_TTL", "8h")
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("RUN_MIGRATIONS", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = parseDuration("JWT_EXPIRY_DURATION", 8*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.ERPBaseURL = strings.TrimRight(viper.GetString("ERP_BASE_URL"), "/")
	if cfg.ERPBaseURL == "" {
		log.Println("Warning: ERP_BASE_URL not set. ERP calls will fail.")
	}
	cfg.ERP = ERPConstants{
		ClientID:      viper.GetInt64("ERP_CLIENT_ID"),
		OrgID:         viper.GetInt64("ERP_ORG_ID"),
		AcctSchemaID:  viper.GetInt64("ERP_ACCT_SCHEMA_ID"),
		DocTypeID:     viper.GetInt64("ERP_DOC_TYPE_ID"),
		GLCategoryID:  viper.GetInt64("ERP_GL_CATEGORY_ID"),
		CurrencyID:    viper.GetInt64("ERP_CURRENCY_ID"),
		ElementID:     viper.GetInt64("ERP_ELEMENT_ID"),
		AccountType:   viper.GetString("ERP_ACCOUNT_TYPE"),
		PostingType:   viper.GetString("ERP_POSTING_TYPE"),
		TimezoneName:  viper.GetString("ERP_TIMEZONE"),
		TimeoutPerReq: parseDuration("ERP_TIMEOUT", 30*time.Second),
	}

	cfg.CleanupEmptyHeader = viper.GetBool("JOURNAL_CLEANUP_EMPTY_HEADER")
	cfg.RejectDuplicates = viper.GetBool("JOURNAL_REJECT_DUPLICATES")
	cfg.Classification = AccountClassification{
		RevenuePrefix: viper.GetString("REVENUE_ACCOUNT_PREFIX"),
		RevenueCodes:  splitList(viper.GetString("REVENUE_ACCOUNT_CODES")),
		ExpensePrefix: viper.GetString("EXPENSE_ACCOUNT_PREFIX"),
		ExpenseCodes:  splitList(viper.GetString("EXPENSE_ACCOUNT_CODES")),
	}

	cfg.RedisURL = viper.GetString("REDIS_URL")
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set. Sessions are kept in memory and lost on restart.")
	}
	cfg.SessionTTL = parseDuration("SESSION_TTL", 8*time.Hour)
	cfg.SessionSecret = viper.GetString("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = cfg.JWTSecret
		log.Println("Warning: SESSION_SECRET not set. ERP tokens are sealed with the JWT secret.")
	}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Journal runs will not be recorded.")
	}
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	return cfg, nil
}

// Location returns the timezone in which naive ERP dates are interpreted.
func (c ERPConstants) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimezoneName)
	if err != nil || c.TimezoneName == "" {
		return time.UTC
	}
	return loc
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
