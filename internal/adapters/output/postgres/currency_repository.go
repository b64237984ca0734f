package postgres

import (
	"context"
	"fmt"

	"currency-assistant/internal/domain"
	"currency-assistant/internal/ports/output"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const nameCondition = "LOWER(currency_name) = LOWER(?)"

// Compile-time check to ensure CurrencyRepository implements output.CurrencyRepository
var _ output.CurrencyRepository = (*CurrencyRepository)(nil)

// CurrencyRepository struct - Secondary/Driven adapter for PostgreSQL
type CurrencyRepository struct {
	dbGorm *gorm.DB
}

// NewCurrencyRepository func - Creates new PostgreSQL repository and migrates the schema
func NewCurrencyRepository(dbGorm *gorm.DB) (*CurrencyRepository, error) {
	logrus.Info("Migrate database ...")
	if err := domain.MigrateDatabase(dbGorm); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &CurrencyRepository{
		dbGorm: dbGorm,
	}, nil
}

// Exists func - Reports whether a currency with the name is stored
func (p *CurrencyRepository) Exists(ctx context.Context, currencyName string) (bool, error) {
	var count int64
	err := p.dbGorm.WithContext(ctx).
		Model(&domain.Currency{}).
		Where(nameCondition, currencyName).
		Count(&count).Error
	if err != nil {
		logrus.Errorln(err)
		return false, err
	}
	return count > 0, nil
}

// Insert func - Inserts a currency in a single statement.
// The unique index on LOWER(currency_name) turns a concurrent duplicate into
// zero affected rows instead of a second row.
func (p *CurrencyRepository) Insert(ctx context.Context, currencyName string, rate decimal.Decimal) (*domain.Currency, error) {
	currency := domain.Currency{
		CurrencyName: currencyName,
		Rate:         rate,
	}
	tx := p.dbGorm.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&currency)
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrCurrencyExists, currencyName)
	}
	return &currency, nil
}

// Update func - Changes the rate of a stored currency
func (p *CurrencyRepository) Update(ctx context.Context, currencyName string, rate decimal.Decimal) (*domain.Currency, error) {
	tx := p.dbGorm.WithContext(ctx).
		Model(&domain.Currency{}).
		Where(nameCondition, currencyName).
		Update("rate", rate)
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, currencyName)
	}
	return p.FindByName(ctx, currencyName)
}

// Delete func - Removes a currency from the database (hard delete)
func (p *CurrencyRepository) Delete(ctx context.Context, currencyName string) error {
	tx := p.dbGorm.WithContext(ctx).
		Where(nameCondition, currencyName).
		Delete(&domain.Currency{})
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, currencyName)
	}
	return nil
}

// List func - Retrieves every currency ordered by name
func (p *CurrencyRepository) List(ctx context.Context) ([]domain.Currency, error) {
	currencies := []domain.Currency{}
	if err := p.dbGorm.WithContext(ctx).Order("currency_name ASC").Find(&currencies).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return currencies, nil
}

// FindByName func - Retrieves a single currency
func (p *CurrencyRepository) FindByName(ctx context.Context, currencyName string) (*domain.Currency, error) {
	var currencies []domain.Currency
	err := p.dbGorm.WithContext(ctx).
		Where(nameCondition, currencyName).
		Limit(1).
		Find(&currencies).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	if len(currencies) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, currencyName)
	}
	return &currencies[0], nil
}

// Ping func - Checks the database connection
func (p *CurrencyRepository) Ping(ctx context.Context) error {
	sqlDB, err := p.dbGorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
