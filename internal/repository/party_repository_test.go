package repository_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonefence/relay/internal/models"
	"github.com/tonefence/relay/internal/repository"
)

func TestPartyRepository_CreateAndFind(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewPartyRepository(db)

	t.Run("create fills generated fields", func(t *testing.T) {
		defer cleanupTestData(db)

		party := &models.Party{
			Phone:            "+15551230001",
			CounterpartPhone: "+15551230002",
			Name:             sql.NullString{String: "Jordan", Valid: true},
			ServicePhone:     "+15550000000",
			Active:           true,
		}
		require.NoError(t, repo.Create(party))
		assert.NotZero(t, party.ID)
		assert.False(t, party.CreatedAt.IsZero())
	})

	t.Run("find by own phone reports client role", func(t *testing.T) {
		defer cleanupTestData(db)

		_, err := insertTestParty(db, "+15551230001", "+15551230002")
		require.NoError(t, err)

		party, role, err := repo.FindByEitherPhone("+15551230001")
		require.NoError(t, err)
		assert.Equal(t, models.RoleClient, role)
		assert.Equal(t, "+15551230001", party.Phone)
	})

	t.Run("find by counterpart phone reports counterpart role", func(t *testing.T) {
		defer cleanupTestData(db)

		_, err := insertTestParty(db, "+15551230001", "+15551230002")
		require.NoError(t, err)

		party, role, err := repo.FindByEitherPhone("+15551230002")
		require.NoError(t, err)
		assert.Equal(t, models.RoleCounterpart, role)
		assert.Equal(t, "+15551230001", party.Phone)
	})

	t.Run("unknown phone reports not found", func(t *testing.T) {
		_, _, err := repo.FindByEitherPhone("+15559990000")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("duplicate own phone rejected", func(t *testing.T) {
		defer cleanupTestData(db)

		_, err := insertTestParty(db, "+15551230001", "+15551230002")
		require.NoError(t, err)

		err = repo.Create(&models.Party{
			Phone:            "+15551230001",
			CounterpartPhone: "+15559990000",
			ServicePhone:     "+15550000000",
			Active:           true,
		})
		assert.ErrorIs(t, err, repository.ErrDuplicatePhone)
	})

	t.Run("identical phones rejected by schema", func(t *testing.T) {
		err := repo.Create(&models.Party{
			Phone:            "+15551230001",
			CounterpartPhone: "+15551230001",
			ServicePhone:     "+15550000000",
		})
		require.Error(t, err)
	})
}

func TestPartyRepository_Updates(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewPartyRepository(db)

	t.Run("update pairing keeps names when nil", func(t *testing.T) {
		defer cleanupTestData(db)

		party := &models.Party{
			Phone:            "+15551230001",
			CounterpartPhone: "+15551230002",
			Name:             sql.NullString{String: "Jordan", Valid: true},
			ServicePhone:     "+15550000000",
			Active:           true,
		}
		require.NoError(t, repo.Create(party))

		newName := "Sam"
		require.NoError(t, repo.UpdatePairing(party.ID, "+15559990000", nil, &newName))

		updated, err := repo.FindByPhone("+15551230001")
		require.NoError(t, err)
		assert.Equal(t, "+15559990000", updated.CounterpartPhone)
		assert.Equal(t, "Jordan", updated.Name.String)
		assert.Equal(t, "Sam", updated.CounterpartName.String)
	})

	t.Run("deactivate and reactivate flags", func(t *testing.T) {
		defer cleanupTestData(db)

		id, err := insertTestParty(db, "+15551230001", "+15551230002")
		require.NoError(t, err)

		require.NoError(t, repo.Deactivate(id))
		party, err := repo.FindByPhone("+15551230001")
		require.NoError(t, err)
		assert.False(t, party.Active)
	})

	t.Run("mark activated", func(t *testing.T) {
		defer cleanupTestData(db)

		party := &models.Party{
			Phone:            "+15551230001",
			CounterpartPhone: "+15551230002",
			ServicePhone:     "+15550000000",
			Active:           true,
		}
		require.NoError(t, repo.Create(party))
		assert.False(t, party.ServiceActivated)

		require.NoError(t, repo.MarkActivated(party.ID))
		updated, err := repo.FindByPhone("+15551230001")
		require.NoError(t, err)
		assert.True(t, updated.ServiceActivated)
	})

	t.Run("updates on missing party report not found", func(t *testing.T) {
		assert.ErrorIs(t, repo.Deactivate(99999), repository.ErrNotFound)
		assert.ErrorIs(t, repo.MarkActivated(99999), repository.ErrNotFound)
	})
}
