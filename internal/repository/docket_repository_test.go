package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketwatch/docket-api/internal/models"
)

func newDocketRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestDocketRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newDocketRepoMock(t)
	defer cleanup()

	repo := NewDocketRepository(db)
	mock.ExpectExec("INSERT INTO dockets").
		WithArgs(22, 123, "standard", "22-123", "certiorari", "Acme Corp. v. Doe", "denied",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec := &models.DocketRecord{
		Term:          22,
		Number:        123,
		Kind:          "standard",
		DocketStr:     "22-123",
		CaseType:      "certiorari",
		CaseName:      "Acme Corp. v. Doe",
		CurrentStatus: "denied",
		Raw:           []byte(`{"CaseNumber":"22-123 "}`),
		Flags:         []byte(`{"denied":true}`),
	}
	require.NoError(t, repo.Upsert(context.Background(), rec))
	assert.False(t, rec.UpdatedAt.IsZero())
}

func TestDocketRepositoryFindByDocketStr(t *testing.T) {
	db, mock, cleanup := newDocketRepoMock(t)
	defer cleanup()

	repo := NewDocketRepository(db)
	rows := sqlmock.NewRows([]string{"id", "term", "number", "kind", "docket_str", "case_type",
		"case_name", "current_status", "raw", "flags", "updated_at"}).
		AddRow(1, 22, 123, "standard", "22-123", "certiorari", "Acme Corp. v. Doe", "denied",
			[]byte(`{}`), []byte(`{}`), time.Now())
	mock.ExpectQuery("SELECT id, term, number").
		WithArgs("22-123").
		WillReturnRows(rows)

	rec, err := repo.FindByDocketStr(context.Background(), "22-123")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp. v. Doe", rec.CaseName)
	assert.Equal(t, 22, rec.Term)
}

func TestDocketRepositoryListByTerm(t *testing.T) {
	db, mock, cleanup := newDocketRepoMock(t)
	defer cleanup()

	repo := NewDocketRepository(db)
	rows := sqlmock.NewRows([]string{"id", "term", "number", "kind", "docket_str", "case_type",
		"case_name", "current_status", "raw", "flags", "updated_at"}).
		AddRow(1, 22, 123, "standard", "22-123", "certiorari", "Acme Corp. v. Doe", "denied",
			[]byte(`{}`), []byte(`{}`), time.Now()).
		AddRow(2, 22, 200, "standard", "22-200", "certiorari", "Roe v. Wade", "granted",
			[]byte(`{}`), []byte(`{}`), time.Now())
	mock.ExpectQuery("SELECT id, term, number").
		WithArgs(22).
		WillReturnRows(rows)

	recs, err := repo.ListByTerm(context.Background(), 22)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "22-200", recs[1].DocketStr)
}
