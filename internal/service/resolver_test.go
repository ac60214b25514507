package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Haedeel-Basel/My-Tutor/internal/repository"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newResolver(t *testing.T) (*ResolverService, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewResolverService(repository.NewTutorRepository(mock), zap.NewNop()), mock
}

func TestResolve_StaticWinsWithoutQuery(t *testing.T) {
	resolver, mock := newResolver(t)

	// Ни одного expectation: попадание в каталог не должно трогать БД
	tutor, err := resolver.Resolve(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", tutor.Name)
	assert.Equal(t, "Mathematics", tutor.Subject)
	assert.Equal(t, 4.9, tutor.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve_EmptyID(t *testing.T) {
	resolver, mock := newResolver(t)

	_, err := resolver.Resolve(context.Background(), "")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve_NonUUIDAbsentID(t *testing.T) {
	resolver, mock := newResolver(t)

	// "999" нет в каталоге и это не uuid, до БД не доходим
	_, err := resolver.Resolve(context.Background(), "999")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve_RemoteTutorIsNormalized(t *testing.T) {
	resolver, mock := newResolver(t)

	remoteID := "d9b2d63d-a233-4123-847a-6c29f8a9f042"
	rows := pgxmock.NewRows(tutorRowColumns()).
		AddRow(tutorRowValues(remoteID, "Ana", "Physics")...)

	mock.ExpectQuery(`SELECT (.+) FROM tutors`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(rows)

	tutor, err := resolver.Resolve(context.Background(), remoteID)

	require.NoError(t, err)
	assert.Equal(t, remoteID, tutor.ID)
	assert.Equal(t, "Ana", tutor.Name)
	assert.Equal(t, 4.5, tutor.Rating)
	assert.Equal(t, 0, tutor.ReviewCount)
	assert.Equal(t, []string{"Physics"}, tutor.Specialties)
	assert.Equal(t, "Available", tutor.Availability)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve_RemoteAbsent(t *testing.T) {
	resolver, mock := newResolver(t)

	mock.ExpectQuery(`SELECT (.+) FROM tutors`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(tutorRowColumns()))

	_, err := resolver.Resolve(context.Background(), "d9b2d63d-a233-4123-847a-6c29f8a9f042")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve_RemoteErrorDegradesToNotFound(t *testing.T) {
	resolver, mock := newResolver(t)

	mock.ExpectQuery(`SELECT (.+) FROM tutors`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnError(errors.New("connection refused"))

	_, err := resolver.Resolve(context.Background(), "d9b2d63d-a233-4123-847a-6c29f8a9f042")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
