package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"

	"currency-assistant/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepository opens a private in-memory database.
// One connection keeps the memory database alive and shared by all goroutines.
func newTestRepository(t *testing.T) *CurrencyRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo, err := NewCurrencyRepository(db)
	require.NoError(t, err)
	return repo
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCurrencyRepository_ExistsIsCaseInsensitive(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, "usd", dec("90.35"))
	require.NoError(t, err)

	exists, err := repo.Exists(ctx, "USD")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "EUR")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCurrencyRepository_InsertDuplicateKeepsStoredRate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, "usd", dec("90.35"))
	require.NoError(t, err)

	_, err = repo.Insert(ctx, "USD", dec("1"))
	assert.True(t, errors.Is(err, domain.ErrCurrencyExists), "got %v", err)

	stored, err := repo.FindByName(ctx, "Usd")
	require.NoError(t, err)
	assert.True(t, stored.Rate.Equal(dec("90.35")), "rate overwritten: %s", stored.Rate)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCurrencyRepository_ConcurrentInsertExactlyOneWins(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Insert(ctx, "GBP", dec("110.5"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrCurrencyExists):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)
}

func TestCurrencyRepository_Update(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, "EUR", dec("98"))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, "eur", dec("99.125"))
	require.NoError(t, err)
	assert.Equal(t, "EUR", updated.CurrencyName)
	assert.True(t, updated.Rate.Equal(dec("99.125")), "got %s", updated.Rate)

	_, err = repo.Update(ctx, "CNY", dec("12"))
	assert.True(t, errors.Is(err, domain.ErrCurrencyNotFound), "got %v", err)
}

func TestCurrencyRepository_DeleteAbsentIsAlwaysNotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.Delete(ctx, "XYZ")
		assert.True(t, errors.Is(err, domain.ErrCurrencyNotFound), "attempt %d: got %v", i, err)
	}

	_, err := repo.Insert(ctx, "XYZ", dec("1.5"))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, "xyz"))

	err = repo.Delete(ctx, "XYZ")
	assert.True(t, errors.Is(err, domain.ErrCurrencyNotFound), "got %v", err)

	// a deleted name can be added again
	_, err = repo.Insert(ctx, "XYZ", dec("2"))
	assert.NoError(t, err)
}

func TestCurrencyRepository_ListOrderedByName(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, name := range []string{"USD", "CNY", "EUR"} {
		_, err := repo.Insert(ctx, name, dec("10"))
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "CNY", all[0].CurrencyName)
	assert.Equal(t, "EUR", all[1].CurrencyName)
	assert.Equal(t, "USD", all[2].CurrencyName)
	assert.NotNil(t, all[0].ID)
}

func TestCurrencyRepository_FindByNameMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.FindByName(context.Background(), "NOPE")
	assert.True(t, errors.Is(err, domain.ErrCurrencyNotFound), "got %v", err)
	assert.NoError(t, repo.Ping(context.Background()))
}
