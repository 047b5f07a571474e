package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/tonefence/relay/internal/models"
	"github.com/tonefence/relay/internal/repository"
	repomocks "github.com/tonefence/relay/internal/repository/mocks"
	"github.com/tonefence/relay/internal/service"
)

func newPartyFixture(t *testing.T) (*repomocks.MockPartyRepository, service.PartyService) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockRepository(ctrl)
	parties := repomocks.NewMockPartyRepository(ctrl)
	repo.EXPECT().Party().Return(parties).AnyTimes()
	return parties, service.NewPartyService(repo, zap.NewNop())
}

func TestPartyService_CreateOrUpdate(t *testing.T) {
	t.Run("creates new pairing with normalized phones", func(t *testing.T) {
		parties, svc := newPartyFixture(t)

		parties.EXPECT().FindByPhone("+15551230001").Return(nil, repository.ErrNotFound)
		parties.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Party) error {
			assert.Equal(t, "+15551230001", p.Phone)
			assert.Equal(t, "+15551234567", p.CounterpartPhone)
			assert.Equal(t, "Sarah", p.Name.String)
			assert.Equal(t, "Alex", p.CounterpartName.String)
			assert.True(t, p.Active)
			assert.False(t, p.ServiceActivated)
			p.ID = 1
			return nil
		})

		party, err := svc.CreateOrUpdate("555-123-0001", "(555) 123-4567", servicePhone, "Sarah", "Alex")
		require.NoError(t, err)
		assert.Equal(t, int64(1), party.ID)
	})

	t.Run("updates existing pairing in place", func(t *testing.T) {
		parties, svc := newPartyFixture(t)
		existing := &models.Party{ID: 5, Phone: "+15551230001"}

		parties.EXPECT().FindByPhone("+15551230001").Return(existing, nil).Times(2)
		parties.EXPECT().UpdatePairing(int64(5), "+15559990000", gomock.Nil(), gomock.Any()).Return(nil)

		_, err := svc.CreateOrUpdate("5551230001", "5559990000", servicePhone, "", "Chris")
		require.NoError(t, err)
	})

	t.Run("rejects identical phones", func(t *testing.T) {
		_, svc := newPartyFixture(t)

		_, err := svc.CreateOrUpdate("5551230001", "555-123-0001", servicePhone, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must differ")
	})

	t.Run("rejects invalid counterpart phone", func(t *testing.T) {
		_, svc := newPartyFixture(t)

		_, err := svc.CreateOrUpdate("5551230001", "12", servicePhone, "", "")
		require.Error(t, err)
	})
}

func TestPartyService_FindByEitherPhone(t *testing.T) {
	t.Run("normalizes before lookup", func(t *testing.T) {
		parties, svc := newPartyFixture(t)
		parties.EXPECT().FindByEitherPhone("+15551230002").
			Return(&models.Party{ID: 3}, models.RoleCounterpart, nil)

		party, role, err := svc.FindByEitherPhone("(555) 123-0002")
		require.NoError(t, err)
		assert.Equal(t, int64(3), party.ID)
		assert.Equal(t, models.RoleCounterpart, role)
	})

	t.Run("invalid phone reads as not found", func(t *testing.T) {
		_, svc := newPartyFixture(t)

		_, _, err := svc.FindByEitherPhone("abc")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
