package repository_test

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/notify/repository"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/errors"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/testutil"
)

var suite *testutil.IntegrationSuite

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		// Integration tests all call testutil.SkipIfShort, so the
		// container is not needed in short mode.
		os.Exit(m.Run())
	}

	ctx := context.Background()

	var err error
	suite, err = testutil.NewIntegrationSuite(ctx)
	if err != nil {
		log.Fatalf("failed to create integration suite: %v", err)
	}
	defer testutil.TerminateContainer(ctx)

	os.Exit(m.Run())
}

func createNotification(t *testing.T, ctx context.Context, repo *repository.NotificationRepository, recipientID, kind string) *repository.Notification {
	t.Helper()
	n := &repository.Notification{
		RecipientID: recipientID,
		Kind:        kind,
		Message:     "test notification",
		Payload:     json.RawMessage(`{"record_id":"r1"}`),
	}
	require.NoError(t, repo.Create(ctx, n))
	return n
}

func TestNotificationRepository_CreateAndList(t *testing.T) {
	testutil.SkipIfShort(t)
	suite.Reset(t)
	ctx := context.Background()

	repo := repository.NewNotificationRepository(suite.DB)
	recipient := uuid.New().String()

	created := createNotification(t, ctx, repo, recipient, "week_approved")
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	createNotification(t, ctx, repo, recipient, "week_rejected")
	createNotification(t, ctx, repo, uuid.New().String(), "week_approved")

	notifications, err := repo.ListForRecipient(ctx, recipient, false)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	// newest first
	assert.Equal(t, "week_rejected", notifications[0].Kind)
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	testutil.SkipIfShort(t)
	suite.Reset(t)
	ctx := context.Background()

	repo := repository.NewNotificationRepository(suite.DB)
	recipient := uuid.New().String()

	n := createNotification(t, ctx, repo, recipient, "timesheet_submitted")

	count, err := repo.UnreadCount(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.MarkRead(ctx, n.ID, recipient))

	count, err = repo.UnreadCount(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	unread, err := repo.ListForRecipient(ctx, recipient, true)
	require.NoError(t, err)
	assert.Empty(t, unread)

	// marking twice or for the wrong recipient fails
	err = repo.MarkRead(ctx, n.ID, recipient)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	err = repo.MarkRead(ctx, n.ID, uuid.New().String())
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestRecipientRepository_ManagerIDs(t *testing.T) {
	testutil.SkipIfShort(t)
	suite.Reset(t)
	ctx := context.Background()

	repo := repository.NewRecipientRepository(suite.DB)

	ids, err := repo.ManagerIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	manager := suite.Fixtures.User(testutil.AsManager())
	employee := suite.Fixtures.User()
	inactive := suite.Fixtures.User(testutil.AsManager(), testutil.WithStatus("inactive"))

	for _, u := range []testutil.UserFixture{manager, employee, inactive} {
		_, err := suite.RawDB.ExecContext(ctx, `
			INSERT INTO users (id, email, password_hash, first_name, last_name, role, is_manager, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New().String(), u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role, u.IsManager, u.Status)
		require.NoError(t, err)
	}

	ids, err = repo.ManagerIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}
