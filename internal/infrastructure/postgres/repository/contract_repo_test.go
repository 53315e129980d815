package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
)

func TestGetContractStatistics(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultContractRepository(db)

	// active count, completed aggregate, cancelled count
	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`COALESCE\(SUM\(creator_amount\), 0\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "earnings"}).AddRow(2, 150.00))
	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	stats, err := repo.GetContractStatistics("creator-1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.ActiveContracts)
	assert.Equal(t, int64(2), stats.CompletedContracts)
	assert.Equal(t, int64(1), stats.CancelledContracts)
	assert.Equal(t, 150.00, stats.TotalEarnings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountContractsByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultContractRepository(db)

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) as count FROM "contract_models"`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("active", 3).
			AddRow("completed", 5))

	counts, err := repo.CountContractsByStatus("creator-1")
	require.NoError(t, err)

	assert.Equal(t, map[domain.ContractStatus]int64{
		domain.StatusActive:    3,
		domain.StatusCompleted: 5,
	}, counts)
}

func TestUpdateContract_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultContractRepository(db)

	mock.ExpectExec(`UPDATE "contract_models" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateContract("missing", map[string]interface{}{"completion_notes": "n/a"})
	assert.ErrorIs(t, err, domain.ErrContractNotFound)
}
