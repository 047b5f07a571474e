package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonefence/relay/internal/models"
	"github.com/tonefence/relay/internal/repository"
)

func TestReplyOptionRepository_LatestUnresolved(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewReplyOptionRepository(db)

	t.Run("returns newest unresolved set with its message", func(t *testing.T) {
		defer cleanupTestData(db)

		partyID, err := insertTestParty(db, "+15551230001", "+15551230002")
		require.NoError(t, err)

		oldMsg, err := insertTestMessage(db, partyID, "incoming", "sent", time.Now().Add(-2*time.Hour))
		require.NoError(t, err)
		oldSet, err := insertTestOptionSet(db, oldMsg)
		require.NoError(t, err)
		require.NoError(t, repo.ResolveSelected(oldSet, "option one"))

		newMsg, err := insertTestMessage(db, partyID, "incoming", "sent", time.Now())
		require.NoError(t, err)
		newSet, err := insertTestOptionSet(db, newMsg)
		require.NoError(t, err)

		set, msg, err := repo.LatestUnresolved(partyID, models.DirectionIncoming)
		require.NoError(t, err)
		assert.Equal(t, newSet, set.ID)
		assert.Equal(t, newMsg, msg.ID)
		assert.Equal(t, models.DirectionIncoming, msg.Direction)
		assert.Equal(t, "option one", set.Option1)
	})

	t.Run("direction filters pending state", func(t *testing.T) {
		defer cleanupTestData(db)

		partyID, err := insertTestParty(db, "+15551230001", "+15551230002")
		require.NoError(t, err)

		draftMsg, err := insertTestMessage(db, partyID, "outgoing_intent", "pending", time.Now())
		require.NoError(t, err)
		_, err = insertTestOptionSet(db, draftMsg)
		require.NoError(t, err)

		_, _, err = repo.LatestUnresolved(partyID, models.DirectionIncoming)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		set, msg, err := repo.LatestUnresolved(partyID, models.DirectionOutgoingIntent)
		require.NoError(t, err)
		assert.Equal(t, draftMsg, msg.ID)
		assert.False(t, set.Resolved())
	})

	t.Run("nothing pending reports not found", func(t *testing.T) {
		defer cleanupTestData(db)

		partyID, err := insertTestParty(db, "+15551230001", "+15551230002")
		require.NoError(t, err)

		_, _, err = repo.LatestUnresolved(partyID, models.DirectionIncoming)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestReplyOptionRepository_Resolution(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewReplyOptionRepository(db)

	t.Run("second resolution rejected", func(t *testing.T) {
		defer cleanupTestData(db)

		partyID, err := insertTestParty(db, "+15551230001", "+15551230002")
		require.NoError(t, err)
		msgID, err := insertTestMessage(db, partyID, "incoming", "sent", time.Now())
		require.NoError(t, err)
		setID, err := insertTestOptionSet(db, msgID)
		require.NoError(t, err)

		require.NoError(t, repo.ResolveSelected(setID, "option two"))

		err = repo.ResolveSelected(setID, "option three")
		assert.ErrorIs(t, err, repository.ErrAlreadyResolved)
		err = repo.ResolveCustom(setID, "something else")
		assert.ErrorIs(t, err, repository.ErrAlreadyResolved)

		set, err := repo.GetByMessageID(msgID)
		require.NoError(t, err)
		assert.Equal(t, "option two", set.SelectedResponse.String)
		assert.False(t, set.CustomResponse.Valid)
	})

	t.Run("custom resolution stores moderated text", func(t *testing.T) {
		defer cleanupTestData(db)

		partyID, err := insertTestParty(db, "+15551230001", "+15551230002")
		require.NoError(t, err)
		msgID, err := insertTestMessage(db, partyID, "incoming", "sent", time.Now())
		require.NoError(t, err)
		setID, err := insertTestOptionSet(db, msgID)
		require.NoError(t, err)

		require.NoError(t, repo.ResolveCustom(setID, "That works for me."))

		set, err := repo.GetByMessageID(msgID)
		require.NoError(t, err)
		assert.True(t, set.Resolved())
		assert.Equal(t, "That works for me.", set.CustomResponse.String)
	})
}

func TestReplyOptionRepository_AbandonStaleIntents(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewReplyOptionRepository(db)
	defer cleanupTestData(db)

	partyID, err := insertTestParty(db, "+15551230001", "+15551230002")
	require.NoError(t, err)

	staleDraft, err := insertTestMessage(db, partyID, "outgoing_intent", "pending", time.Now().Add(-72*time.Hour))
	require.NoError(t, err)
	_, err = insertTestOptionSet(db, staleDraft)
	require.NoError(t, err)

	freshDraft, err := insertTestMessage(db, partyID, "outgoing_intent", "pending", time.Now())
	require.NoError(t, err)
	_, err = insertTestOptionSet(db, freshDraft)
	require.NoError(t, err)

	staleIncoming, err := insertTestMessage(db, partyID, "incoming", "sent", time.Now().Add(-72*time.Hour))
	require.NoError(t, err)
	_, err = insertTestOptionSet(db, staleIncoming)
	require.NoError(t, err)

	closed, err := repo.AbandonStaleIntents(48 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), closed)

	// The abandoned draft no longer shadows newer state.
	set, msg, err := repo.LatestUnresolved(partyID, models.DirectionOutgoingIntent)
	require.NoError(t, err)
	assert.Equal(t, freshDraft, msg.ID)
	assert.False(t, set.Abandoned())

	abandoned, err := repo.GetByMessageID(staleDraft)
	require.NoError(t, err)
	assert.True(t, abandoned.Abandoned())

	// Abandoned sets refuse resolution.
	err = repo.ResolveSelected(abandoned.ID, "option one")
	assert.ErrorIs(t, err, repository.ErrAlreadyResolved)

	// Incoming pending state is untouched.
	_, incomingMsg, err := repo.LatestUnresolved(partyID, models.DirectionIncoming)
	require.NoError(t, err)
	assert.Equal(t, staleIncoming, incomingMsg.ID)
}
