package util

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Secrets struct {
	Jwt   string       `json:"jwt"`
	Db    DbSecrets    `json:"db"`
	Price PriceSecrets `json:"price"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

// PriceSecrets selects the quote source. Provider is "binance" or
// "yahoo"; BaseUrl overrides the binance endpoint, mostly for tests.
type PriceSecrets struct {
	Provider  string `json:"provider"`
	BaseUrl   string `json:"baseUrl"`
	TimeoutMs int    `json:"timeoutMs"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func (t DbSecrets) ToDatabaseURL() string {
	sslMode := "disable"
	if t.EnableSsl {
		sslMode = "require"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		t.User, t.Password, t.Host, t.Port, t.Database, sslMode)
}

func LoadSecrets() (*Secrets, error) {
	// .env is optional; deploy targets set real env vars instead
	_ = godotenv.Load()

	secretsFile := "secrets.json"
	if os.Getenv("FOLIO_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("FOLIO_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile, err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(&secrets)

	return &secrets, nil
}

func applyEnvOverrides(s *Secrets) {
	if v := os.Getenv("FOLIO_JWT_SECRET"); v != "" {
		s.Jwt = v
	}
	if v := os.Getenv("FOLIO_DB_HOST"); v != "" {
		s.Db.Host = v
	}
	if v := os.Getenv("FOLIO_DB_PORT"); v != "" {
		s.Db.Port = v
	}
	if v := os.Getenv("FOLIO_DB_USER"); v != "" {
		s.Db.User = v
	}
	if v := os.Getenv("FOLIO_DB_PASSWORD"); v != "" {
		s.Db.Password = v
	}
	if v := os.Getenv("FOLIO_DB_NAME"); v != "" {
		s.Db.Database = v
	}
	if v := os.Getenv("FOLIO_PRICE_PROVIDER"); v != "" {
		s.Price.Provider = v
	}
}

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TimePointer(t time.Time) *time.Time {
	return &t
}

func StringPointer(s string) *string {
	return &s
}
