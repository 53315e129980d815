package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestCreateWithdrawal_WritesLedgerInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultWithdrawalRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "withdrawal_models"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "transaction_models"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateWithdrawal(&domain.Withdrawal{
		ID:        "3f1d1c2e-0000-0000-0000-000000000001",
		CreatorID: "3f1d1c2e-0000-0000-0000-000000000002",
		Amount:    50.00,
		Method:    "wise",
		Status:    domain.WithdrawalPending,
		CreatedAt: time.Now(),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithdrawal_LedgerFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultWithdrawalRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "withdrawal_models"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "transaction_models"`).
		WillReturnError(gorm.ErrInvalidData)
	mock.ExpectRollback()

	err := repo.CreateWithdrawal(&domain.Withdrawal{
		ID:        "3f1d1c2e-0000-0000-0000-000000000001",
		CreatorID: "3f1d1c2e-0000-0000-0000-000000000002",
		Amount:    50.00,
		Method:    "wise",
		Status:    domain.WithdrawalPending,
		CreatedAt: time.Now(),
	})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWithdrawalStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultWithdrawalRepository(db)

	mock.ExpectExec(`UPDATE "withdrawal_models" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateWithdrawalStatus("withdrawal-1", domain.WithdrawalCompleted)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWithdrawalStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultWithdrawalRepository(db)

	mock.ExpectExec(`UPDATE "withdrawal_models" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateWithdrawalStatus("missing", domain.WithdrawalCompleted)
	assert.ErrorIs(t, err, domain.ErrWithdrawalNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWithdrawalByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultWithdrawalRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "withdrawal_models"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetWithdrawalByID("missing")
	assert.ErrorIs(t, err, domain.ErrWithdrawalNotFound)
}

func TestGetWithdrawalByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultWithdrawalRepository(db)

	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM "withdrawal_models"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "creator_id", "amount", "method", "details_json", "status", "created_at",
		}).AddRow(
			"withdrawal-1", "creator-1", 75.25, "bank_transfer",
			`{"iban":"DE89370400440532013000"}`, "pending", created,
		))

	withdrawal, err := repo.GetWithdrawalByID("withdrawal-1")
	require.NoError(t, err)

	assert.Equal(t, "withdrawal-1", withdrawal.ID)
	assert.Equal(t, 75.25, withdrawal.Amount)
	assert.Equal(t, domain.WithdrawalPending, withdrawal.Status)
	assert.Equal(t, "DE89370400440532013000", withdrawal.Details["iban"])
}

func TestFindApprovedCampaignIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultCampaignRepository(db)

	mock.ExpectQuery(`SELECT "id" FROM "campaign_models"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow("campaign-1").
			AddRow("campaign-2"))

	ids, err := repo.FindApprovedCampaignIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"campaign-1", "campaign-2"}, ids)
}
