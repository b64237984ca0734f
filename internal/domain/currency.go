package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MaxCurrencyNameLength is the widest identifier the currencies table accepts
const MaxCurrencyNameLength = 64

// Currency struct - Core domain entity, one row of the rate table.
// Rate is the amount of base currency for one unit of CurrencyName.
type Currency struct {
	ID           *uuid.UUID      `gorm:"type:uuid;primary_key;"`
	CurrencyName string          `gorm:"type:varchar(64);not null;"`
	Rate         decimal.Decimal `gorm:"type:numeric(20,6);not null;"`
	CreatedAt    *time.Time      `gorm:"type:timestamp"`
	UpdatedAt    *time.Time      `gorm:"type:timestamp"`
}

// TableName func
func (c *Currency) TableName() string {
	return "currencies"
}

// BeforeCreate hook - generates UUID before creating
func (c *Currency) BeforeCreate(tx *gorm.DB) (err error) {
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	c.ID = &id
	return nil
}

// MigrateDatabase func - Auto-migrate database schema.
// Identifier uniqueness is enforced on LOWER(currency_name) so that inserts
// can rely on ON CONFLICT instead of a separate existence check.
func MigrateDatabase(db *gorm.DB) error {
	if db == nil {
		return ErrDatabaseUnavailable
	}
	if err := db.AutoMigrate(&Currency{}); err != nil {
		return err
	}
	err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_currencies_name_lower ON currencies (LOWER(currency_name))").Error
	if err != nil {
		return err
	}
	logrus.Info("Currency schema is up to date")
	return nil
}

// NormalizeCurrencyName trims the identifier and applies the canonical upper casing
func NormalizeCurrencyName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// SameCurrency reports whether two identifiers name the same currency
func SameCurrency(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
