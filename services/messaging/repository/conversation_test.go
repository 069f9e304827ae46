package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/churchpool/churchpool/internal/pkg/models"
)

func setupConversationRepoTest(t *testing.T) (*ConversationRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewConversationRepository(&models.Config{}, db)

	return repo, mock, func() {
		db.Close()
	}
}

func conversationRows(conversationID, rideID, participantA, participantB uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "ride_id", "participant_a", "participant_b",
		"last_message", "last_message_time", "unread_a", "unread_b", "created_at",
	}).AddRow(
		conversationID.String(), rideID.String(), participantA.String(), participantB.String(),
		"", nil, 0, 0, time.Now(),
	)
}

func TestGetOrCreateConversation(t *testing.T) {
	rideID := uuid.New()
	userA := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	userB := uuid.MustParse("99999999-9999-9999-9999-999999999999")
	conversationID := uuid.New()

	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		userA     uuid.UUID
		userB     uuid.UUID
	}{
		{
			name:  "Existing Conversation",
			userA: userA,
			userB: userB,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM conversations\s+WHERE ride_id = \$1 AND participant_a = \$2 AND participant_b = \$3`).
					WithArgs(rideID, userA, userB).
					WillReturnRows(conversationRows(conversationID, rideID, userA, userB))
			},
		},
		{
			name: "Reversed Pair Finds Same Row",
			// passing the pair in the other order must normalize
			userA: userB,
			userB: userA,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM conversations\s+WHERE ride_id = \$1 AND participant_a = \$2 AND participant_b = \$3`).
					WithArgs(rideID, userA, userB).
					WillReturnRows(conversationRows(conversationID, rideID, userA, userB))
			},
		},
		{
			name:  "First Open Creates",
			userA: userA,
			userB: userB,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM conversations\s+WHERE ride_id = \$1 AND participant_a = \$2 AND participant_b = \$3`).
					WithArgs(rideID, userA, userB).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectExec(`INSERT INTO conversations (.+) ON CONFLICT \(ride_id, participant_a, participant_b\) DO NOTHING`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT (.+) FROM conversations\s+WHERE ride_id = \$1 AND participant_a = \$2 AND participant_b = \$3`).
					WithArgs(rideID, userA, userB).
					WillReturnRows(conversationRows(conversationID, rideID, userA, userB))
			},
		},
		{
			name:  "Concurrent Create Converges",
			userA: userA,
			userB: userB,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM conversations`).
					WithArgs(rideID, userA, userB).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				// another opener won the insert race
				mock.ExpectExec(`INSERT INTO conversations`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT (.+) FROM conversations`).
					WithArgs(rideID, userA, userB).
					WillReturnRows(conversationRows(conversationID, rideID, userA, userB))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupConversationRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			conversation, err := repo.GetOrCreateConversation(context.Background(), tc.userA, tc.userB, rideID)

			assert.NoError(t, err)
			assert.Equal(t, conversationID, conversation.ID)
			assert.Equal(t, []string{userA.String(), userB.String()}, conversation.Participants)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetConversationByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupConversationRepoTest(t)
	defer cleanup()

	conversationID := uuid.New().String()
	mock.ExpectQuery(`SELECT (.+) FROM conversations WHERE id = \$1`).
		WithArgs(conversationID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	conversation, err := repo.GetConversationByID(context.Background(), conversationID)

	assert.ErrorIs(t, err, models.ErrConversationNotFound)
	assert.Nil(t, conversation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListConversationsByUser(t *testing.T) {
	repo, mock, cleanup := setupConversationRepoTest(t)
	defer cleanup()

	userA := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	userB := uuid.MustParse("99999999-9999-9999-9999-999999999999")
	rideID := uuid.New()

	rows := conversationRows(uuid.New(), rideID, userA, userB)
	mock.ExpectQuery(`SELECT (.+) FROM conversations\s+WHERE participant_a = \$1 OR participant_b = \$1\s+ORDER BY last_message_time DESC NULLS LAST, created_at DESC`).
		WithArgs(userA.String()).
		WillReturnRows(rows)

	result, err := repo.ListConversationsByUser(context.Background(), userA.String())

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Contains(t, result[0].UnreadCount, userB.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
