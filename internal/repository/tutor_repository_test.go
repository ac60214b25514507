package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Haedeel-Basel/My-Tutor/internal/model"
	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tutorTestColumns = []string{
	"id", "user_id", "name", "subject", "rating", "review_count",
	"hourly_rate", "image", "bio", "experience", "education",
	"languages", "timezone", "specialties", "created_at",
}

func ptr[T any](v T) *T { return &v }

func TestTutorRepository_GetByID(t *testing.T) {
	tutorID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name     string
		setup    func(mock pgxmock.PgxPoolIface)
		wantNil  bool
		wantErr  bool
		wantName string
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(tutorTestColumns).
					AddRow(tutorID, userID, "Ana", "Physics", ptr("4.50"), ptr(int32(3)),
						ptr(60.0), (*string)(nil), ptr("Bio"), ptr("4"), ptr("MSc"),
						[]string{"English"}, (*string)(nil), []string{"Mechanics"}, now)
				mock.ExpectQuery(`SELECT (.+) FROM tutors`).
					WithArgs(tutorID).
					WillReturnRows(rows)
			},
			wantName: "Ana",
		},
		{
			name: "not found returns nil without error",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM tutors`).
					WithArgs(tutorID).
					WillReturnRows(pgxmock.NewRows(tutorTestColumns))
			},
			wantNil: true,
		},
		{
			name: "db error",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM tutors`).
					WithArgs(tutorID).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)

			repo := NewTutorRepository(mock)
			tutor, err := repo.GetByID(context.Background(), tutorID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, tutor)
			}
			if tt.wantName != "" {
				require.NotNil(t, tutor)
				assert.Equal(t, tt.wantName, tutor.Name)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTutorRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tutorID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "rating", "review_count", "created_at"}).
		AddRow(tutorID, ptr("0"), ptr(int32(0)), now)

	mock.ExpectQuery(`INSERT INTO tutors`).
		WithArgs(pgxmock.AnyArg(), "Ana", "Physics", "Bio", pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(rows)

	repo := NewTutorRepository(mock)
	tutor := &model.TutorRow{
		UserID:     uuid.New(),
		Name:       "Ana",
		Subject:    "Physics",
		Bio:        ptr("Bio"),
		HourlyRate: ptr(60.0),
	}

	err = repo.Create(context.Background(), tutor)

	require.NoError(t, err)
	assert.Equal(t, tutorID, tutor.ID)
	require.NotNil(t, tutor.Rating)
	assert.Equal(t, "0", *tutor.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTutorRepository_ListAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	rows := pgxmock.NewRows(tutorTestColumns).
		AddRow(uuid.New(), uuid.New(), "Newest", "Physics", ptr("4.50"), (*int32)(nil),
			(*float64)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
			[]string(nil), (*string)(nil), []string(nil), now).
		AddRow(uuid.New(), uuid.New(), "Oldest", "Music", ptr("4.00"), (*int32)(nil),
			(*float64)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
			[]string(nil), (*string)(nil), []string(nil), now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT (.+) FROM tutors`).WillReturnRows(rows)

	repo := NewTutorRepository(mock)
	tutors, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, tutors, 2)
	assert.Equal(t, "Newest", tutors[0].Name)
	assert.Equal(t, "Oldest", tutors[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
