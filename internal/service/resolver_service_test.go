package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/tonefence/relay/internal/config"
	"github.com/tonefence/relay/internal/models"
	"github.com/tonefence/relay/internal/repository"
	repomocks "github.com/tonefence/relay/internal/repository/mocks"
	"github.com/tonefence/relay/internal/service"
	svcmocks "github.com/tonefence/relay/internal/service/mocks"
	"github.com/tonefence/relay/internal/transform"
	tfmocks "github.com/tonefence/relay/internal/transform/mocks"
	tpmocks "github.com/tonefence/relay/internal/transport/mocks"
)

const (
	clientPhone      = "+15551230001"
	counterpartPhone = "+15551230002"
	servicePhone     = "+15551230099"
)

type resolverFixture struct {
	messages  *repomocks.MockMessageRepository
	options   *repomocks.MockReplyOptionRepository
	parties   *svcmocks.MockPartyService
	transform *tfmocks.MockTransform
	transport *tpmocks.MockTransport
	resolver  service.ResolverService
}

func newResolverFixture(t *testing.T) *resolverFixture {
	ctrl := gomock.NewController(t)

	repo := repomocks.NewMockRepository(ctrl)
	f := &resolverFixture{
		messages:  repomocks.NewMockMessageRepository(ctrl),
		options:   repomocks.NewMockReplyOptionRepository(ctrl),
		parties:   svcmocks.NewMockPartyService(ctrl),
		transform: tfmocks.NewMockTransform(ctrl),
		transport: tpmocks.NewMockTransport(ctrl),
	}
	repo.EXPECT().Message().Return(f.messages).AnyTimes()
	repo.EXPECT().ReplyOption().Return(f.options).AnyTimes()

	f.transport.EXPECT().NormalizeAddress(gomock.Any()).
		DoAndReturn(func(a string) string { return a }).AnyTimes()
	f.transport.EXPECT().IsValidAddress(gomock.Any()).Return(true).AnyTimes()

	cfg := &config.Config{
		Mediation: config.MediationConfig{MaxMessageLength: 1000, DedupeTTLHours: 24},
		Transport: config.TransportConfig{FromNumber: servicePhone},
	}

	f.resolver = service.NewResolverService(cfg, repo, f.parties, f.transform, f.transport, nil, zap.NewNop())
	return f
}

func activeParty() *models.Party {
	return &models.Party{
		ID:                 7,
		Phone:              clientPhone,
		CounterpartPhone:   counterpartPhone,
		Name:               sql.NullString{String: "Jordan", Valid: true},
		CounterpartName:    sql.NullString{String: "Sam", Valid: true},
		ServicePhone:       servicePhone,
		Active:             true,
		SubscriptionStatus: sql.NullString{String: string(models.SubscriptionActive), Valid: true},
		ServiceActivated:   true,
	}
}

func inbound(from, body string) models.InboundSMS {
	return models.InboundSMS{From: from, To: servicePhone, Body: body, ExternalID: "SMin"}
}

func TestHandleInbound_CounterpartMessageFiltered(t *testing.T) {
	f := newResolverFixture(t)
	party := activeParty()

	f.parties.EXPECT().FindByEitherPhone(counterpartPhone).
		Return(party, models.RoleCounterpart, nil)

	f.transform.EXPECT().ProcessIncoming(gomock.Any(), "pay up or you won't see the kids").
		Return(&transform.IncomingResult{
			FilteredText:  "There is an outstanding expense to settle before the next visit.",
			Category:      models.CategoryDecisionMaking,
			Options:       [3]string{"I'll send it today.", "Can we split it?", "Let's review the amount first."},
			ContextReason: "there is a payment disagreement",
		}, nil)

	var recordedID int64 = 101
	f.messages.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Message) error {
		assert.Equal(t, models.DirectionIncoming, m.Direction)
		assert.Equal(t, models.MessageStatusPending, m.Status)
		assert.Equal(t, counterpartPhone, m.Sender)
		assert.Equal(t, clientPhone, m.Recipient)
		assert.Equal(t, "pay up or you won't see the kids", m.OriginalText)
		require.True(t, m.FilteredText.Valid)
		m.ID = recordedID
		return nil
	})
	f.options.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.ReplyOptionSet) error {
		assert.Equal(t, recordedID, s.MessageID)
		assert.Equal(t, "I'll send it today.", s.Option1)
		return nil
	})

	f.transport.EXPECT().Send(gomock.Any(), clientPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "Hi Jordan,")
			assert.Contains(t, body, "outstanding expense")
			assert.Contains(t, body, "1. I'll send it today.")
			assert.Contains(t, body, "write your own response")
			return "SMout", nil
		})
	f.messages.EXPECT().UpdateStatus(recordedID, models.MessageStatusSent, gomock.Any(), nil).Return(nil)

	err := f.resolver.HandleInbound(context.Background(), inbound(counterpartPhone, "pay up or you won't see the kids"))
	require.NoError(t, err)
}

func TestHandleInbound_ClientSelectsOption(t *testing.T) {
	f := newResolverFixture(t)
	party := activeParty()

	set := &models.ReplyOptionSet{
		ID:        55,
		MessageID: 101,
		Option1:   "I'll send it today.",
		Option2:   "Can we split it?",
		Option3:   "Let's review the amount first.",
	}
	pending := &models.Message{
		ID:        101,
		PartyID:   party.ID,
		Direction: models.DirectionIncoming,
		Category:  sql.NullString{String: string(models.CategoryDecisionMaking), Valid: true},
	}

	f.parties.EXPECT().FindByEitherPhone(clientPhone).Return(party, models.RoleClient, nil)
	f.options.EXPECT().LatestUnresolved(party.ID, models.DirectionIncoming).Return(set, pending, nil)

	var outgoingID int64 = 102
	f.messages.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Message) error {
		assert.Equal(t, models.DirectionOutgoing, m.Direction)
		assert.Equal(t, models.MessageStatusPending, m.Status)
		assert.Equal(t, "2", m.OriginalText)
		assert.Equal(t, "Can we split it?", m.FilteredText.String)
		m.ID = outgoingID
		return nil
	})
	f.transport.EXPECT().Send(gomock.Any(), counterpartPhone, "Can we split it?").Return("SM2", nil)
	f.messages.EXPECT().UpdateStatus(outgoingID, models.MessageStatusSent, gomock.Any(), nil).Return(nil)
	f.options.EXPECT().ResolveSelected(set.ID, "Can we split it?").Return(nil)
	f.transport.EXPECT().Send(gomock.Any(), clientPhone, gomock.Any()).Return("SM3", nil)

	err := f.resolver.HandleInbound(context.Background(), inbound(clientPhone, "2"))
	require.NoError(t, err)
}

func TestHandleInbound_ClientCustomReplyModerated(t *testing.T) {
	f := newResolverFixture(t)
	party := activeParty()

	set := &models.ReplyOptionSet{ID: 55, MessageID: 101, Option1: "a", Option2: "b", Option3: "c"}
	pending := &models.Message{ID: 101, PartyID: party.ID, Direction: models.DirectionIncoming}

	f.parties.EXPECT().FindByEitherPhone(clientPhone).Return(party, models.RoleClient, nil)
	f.options.EXPECT().LatestUnresolved(party.ID, models.DirectionIncoming).Return(set, pending, nil)
	f.transform.EXPECT().ModerateCustomReply(gomock.Any(), "fine, whatever works").
		Return("That works for me.", nil)

	f.messages.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Message) error {
		assert.Equal(t, "That works for me.", m.FilteredText.String)
		m.ID = 103
		return nil
	})
	f.transport.EXPECT().Send(gomock.Any(), counterpartPhone, "That works for me.").Return("SM4", nil)
	f.messages.EXPECT().UpdateStatus(int64(103), models.MessageStatusSent, gomock.Any(), nil).Return(nil)
	f.options.EXPECT().ResolveCustom(set.ID, "That works for me.").Return(nil)
	f.transport.EXPECT().Send(gomock.Any(), clientPhone, gomock.Any()).Return("SM5", nil)

	err := f.resolver.HandleInbound(context.Background(), inbound(clientPhone, "fine, whatever works"))
	require.NoError(t, err)
}

func TestHandleInbound_CustomReplyRefusedAsksForOption(t *testing.T) {
	f := newResolverFixture(t)
	party := activeParty()

	set := &models.ReplyOptionSet{ID: 55, MessageID: 101, Option1: "a", Option2: "b", Option3: "c"}
	pending := &models.Message{ID: 101, PartyID: party.ID, Direction: models.DirectionIncoming}

	f.parties.EXPECT().FindByEitherPhone(clientPhone).Return(party, models.RoleClient, nil)
	f.options.EXPECT().LatestUnresolved(party.ID, models.DirectionIncoming).Return(set, pending, nil)
	f.transform.EXPECT().ModerateCustomReply(gomock.Any(), gomock.Any()).
		Return("", transform.ErrReplyRefused)

	// Nothing reaches the counterpart; the client is asked to pick 1-3.
	f.transport.EXPECT().Send(gomock.Any(), clientPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "Reply 1, 2, or 3")
			return "SM6", nil
		})

	err := f.resolver.HandleInbound(context.Background(), inbound(clientPhone, "you are a nightmare to deal with"))
	require.NoError(t, err)
}

func TestHandleInbound_ClientInitiatesDraft(t *testing.T) {
	f := newResolverFixture(t)
	party := activeParty()

	f.parties.EXPECT().FindByEitherPhone(clientPhone).Return(party, models.RoleClient, nil)
	f.options.EXPECT().LatestUnresolved(party.ID, models.DirectionIncoming).
		Return(nil, nil, repository.ErrNotFound)
	f.options.EXPECT().LatestUnresolved(party.ID, models.DirectionOutgoingIntent).
		Return(nil, nil, repository.ErrNotFound)

	f.transform.EXPECT().GenerateOutgoingOptions(gomock.Any(), "can you take Emma saturday").
		Return(&transform.OutgoingResult{
			Options:  [3]string{"Could you take Emma this Saturday?", "Are you available for Emma on Saturday?", "Would Saturday work for you to have Emma?"},
			Category: models.CategoryDecisionMaking,
		}, nil)

	f.messages.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Message) error {
		assert.Equal(t, models.DirectionOutgoingIntent, m.Direction)
		assert.Equal(t, models.MessageStatusPending, m.Status)
		m.ID = 104
		return nil
	})
	f.options.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.ReplyOptionSet) error {
		assert.Equal(t, int64(104), s.MessageID)
		return nil
	})

	// Only the client hears back; the counterpart gets nothing yet.
	f.transport.EXPECT().Send(gomock.Any(), clientPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "3 ways to send your message to Sam")
			assert.Contains(t, body, "Reply with 1, 2, or 3 to send.")
			return "SM7", nil
		})

	err := f.resolver.HandleInbound(context.Background(), inbound(clientPhone, "can you take Emma saturday"))
	require.NoError(t, err)
}

func TestHandleInbound_IncomingPendingShadowsDraft(t *testing.T) {
	f := newResolverFixture(t)
	party := activeParty()

	// Both directions have unresolved sets; the incoming one must win.
	incomingSet := &models.ReplyOptionSet{ID: 60, MessageID: 110, Option1: "x", Option2: "y", Option3: "z"}
	incomingMsg := &models.Message{ID: 110, PartyID: party.ID, Direction: models.DirectionIncoming}

	f.parties.EXPECT().FindByEitherPhone(clientPhone).Return(party, models.RoleClient, nil)
	f.options.EXPECT().LatestUnresolved(party.ID, models.DirectionIncoming).
		Return(incomingSet, incomingMsg, nil)

	f.messages.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Message) error {
		assert.Equal(t, "x", m.FilteredText.String)
		m.ID = 111
		return nil
	})
	f.transport.EXPECT().Send(gomock.Any(), counterpartPhone, "x").Return("SM8", nil)
	f.messages.EXPECT().UpdateStatus(int64(111), models.MessageStatusSent, gomock.Any(), nil).Return(nil)
	f.options.EXPECT().ResolveSelected(incomingSet.ID, "x").Return(nil)
	f.transport.EXPECT().Send(gomock.Any(), clientPhone, gomock.Any()).Return("SM9", nil)

	err := f.resolver.HandleInbound(context.Background(), inbound(clientPhone, "1"))
	require.NoError(t, err)
}

func TestHandleInbound_CommandPreemptsPendingOptions(t *testing.T) {
	f := newResolverFixture(t)
	party := activeParty()

	f.parties.EXPECT().FindByEitherPhone(clientPhone).Return(party, models.RoleClient, nil)
	// No LatestUnresolved expectation: STOP must never be treated as a reply.
	f.parties.EXPECT().Deactivate(party.ID).Return(nil)
	f.transport.EXPECT().Send(gomock.Any(), clientPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "paused")
			return "SM10", nil
		})

	err := f.resolver.HandleInbound(context.Background(), inbound(clientPhone, "STOP"))
	require.NoError(t, err)
}

func TestHandleInbound_StatusCommand(t *testing.T) {
	f := newResolverFixture(t)
	party := activeParty()

	f.parties.EXPECT().FindByEitherPhone(clientPhone).Return(party, models.RoleClient, nil)
	f.messages.EXPECT().ActivitySummary(party.ID).
		Return(&models.ActivitySummary{IncomingCount: 4, OutgoingCount: 9}, nil)
	f.transport.EXPECT().Send(gomock.Any(), clientPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "received: 4")
			assert.Contains(t, body, "sent: 9")
			return "SM11", nil
		})

	err := f.resolver.HandleInbound(context.Background(), inbound(clientPhone, "status"))
	require.NoError(t, err)
}

func TestHandleInbound_UnknownSenderHelp(t *testing.T) {
	f := newResolverFixture(t)

	f.parties.EXPECT().FindByEitherPhone("+15559998888").
		Return(nil, models.PartyRole(""), repository.ErrNotFound)
	// Help is answered without creating any records.
	f.transport.EXPECT().Send(gomock.Any(), "+15559998888", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "Reply 1, 2, or 3")
			return "SM12", nil
		})

	err := f.resolver.HandleInbound(context.Background(), inbound("+15559998888", "help"))
	require.NoError(t, err)
}

func TestHandleInbound_UnknownSenderSetup(t *testing.T) {
	f := newResolverFixture(t)

	f.parties.EXPECT().FindByEitherPhone("+15559998888").
		Return(nil, models.PartyRole(""), repository.ErrNotFound)
	f.parties.EXPECT().CreateOrUpdate("+15559998888", gomock.Any(), servicePhone, "Sarah", "Alex").
		Return(&models.Party{ID: 9}, nil)
	f.transport.EXPECT().Send(gomock.Any(), "+15559998888", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "co-parent's number on file")
			return "SM13", nil
		})

	err := f.resolver.HandleInbound(context.Background(), inbound("+15559998888", "I'm Sarah and my ex is Alex 555-123-4567"))
	require.NoError(t, err)
}

func TestHandleInbound_UnknownSenderGarbageGetsWelcome(t *testing.T) {
	f := newResolverFixture(t)

	f.parties.EXPECT().FindByEitherPhone("+15559998888").
		Return(nil, models.PartyRole(""), repository.ErrNotFound)
	f.transport.EXPECT().Send(gomock.Any(), "+15559998888", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "Welcome to Relay")
			return "SM14", nil
		})

	err := f.resolver.HandleInbound(context.Background(), inbound("+15559998888", "hey what is this"))
	require.NoError(t, err)
}

func TestHandleInbound_GatedPartyGetsSubscriptionNotice(t *testing.T) {
	f := newResolverFixture(t)
	party := activeParty()
	party.SubscriptionStatus = sql.NullString{String: string(models.SubscriptionPastDue), Valid: true}

	f.parties.EXPECT().FindByEitherPhone(clientPhone).Return(party, models.RoleClient, nil)
	f.transport.EXPECT().Send(gomock.Any(), clientPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "isn't active")
			return "SM15", nil
		})

	err := f.resolver.HandleInbound(context.Background(), inbound(clientPhone, "tell him to stop yelling"))
	require.NoError(t, err)
}

func TestHandleInbound_GatedStartCompletesActivation(t *testing.T) {
	f := newResolverFixture(t)
	party := activeParty()
	party.ServiceActivated = false

	f.parties.EXPECT().FindByEitherPhone(clientPhone).Return(party, models.RoleClient, nil)
	f.parties.EXPECT().MarkActivated(party.ID).Return(nil)
	f.transport.EXPECT().Send(gomock.Any(), clientPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "all set")
			return "SM16", nil
		})

	err := f.resolver.HandleInbound(context.Background(), inbound(clientPhone, "START"))
	require.NoError(t, err)
}

func TestHandleInbound_CounterpartEmojiOnlyDroppedSilently(t *testing.T) {
	f := newResolverFixture(t)
	party := activeParty()

	f.parties.EXPECT().FindByEitherPhone(counterpartPhone).
		Return(party, models.RoleCounterpart, nil)
	// No transform call, no records, no sends.

	err := f.resolver.HandleInbound(context.Background(), inbound(counterpartPhone, "🤬🤬🤬"))
	require.NoError(t, err)
}

func TestHandleInbound_CounterpartTransformFailureIsSilent(t *testing.T) {
	f := newResolverFixture(t)
	party := activeParty()

	f.parties.EXPECT().FindByEitherPhone(counterpartPhone).
		Return(party, models.RoleCounterpart, nil)
	f.transform.EXPECT().ProcessIncoming(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("transform unavailable"))
	// The counterpart never receives an error reply.

	err := f.resolver.HandleInbound(context.Background(), inbound(counterpartPhone, "running late for pickup"))
	require.NoError(t, err)
}

func TestHandleInbound_SendFailureMarksOutgoingFailed(t *testing.T) {
	f := newResolverFixture(t)
	party := activeParty()

	set := &models.ReplyOptionSet{ID: 55, MessageID: 101, Option1: "a", Option2: "b", Option3: "c"}
	pending := &models.Message{ID: 101, PartyID: party.ID, Direction: models.DirectionIncoming}

	f.parties.EXPECT().FindByEitherPhone(clientPhone).Return(party, models.RoleClient, nil)
	f.options.EXPECT().LatestUnresolved(party.ID, models.DirectionIncoming).Return(set, pending, nil)

	f.messages.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Message) error {
		m.ID = 120
		return nil
	})
	f.transport.EXPECT().Send(gomock.Any(), counterpartPhone, "a").
		Return("", errors.New("provider down"))
	f.messages.EXPECT().UpdateStatus(int64(120), models.MessageStatusFailed, nil, gomock.Any()).Return(nil)
	// The option set stays unresolved so the client can retry.
	f.transport.EXPECT().Send(gomock.Any(), clientPhone, gomock.Any()).Return("SM17", nil)

	err := f.resolver.HandleInbound(context.Background(), inbound(clientPhone, "1"))
	require.NoError(t, err)
}

func TestHandleStatusCallback(t *testing.T) {
	t.Run("known message updated", func(t *testing.T) {
		f := newResolverFixture(t)
		f.messages.EXPECT().UpdateStatusByExternalID("SM100", models.MessageStatusDelivered).Return(nil)

		err := f.resolver.HandleStatusCallback(context.Background(), models.StatusCallback{
			ExternalID: "SM100",
			Status:     models.MessageStatusDelivered,
		})
		require.NoError(t, err)
	})

	t.Run("unknown message dropped", func(t *testing.T) {
		f := newResolverFixture(t)
		f.messages.EXPECT().UpdateStatusByExternalID("SM404", models.MessageStatusFailed).
			Return(repository.ErrNotFound)

		err := f.resolver.HandleStatusCallback(context.Background(), models.StatusCallback{
			ExternalID: "SM404",
			Status:     models.MessageStatusFailed,
			ErrorCode:  "30003",
		})
		require.NoError(t, err)
	})
}
