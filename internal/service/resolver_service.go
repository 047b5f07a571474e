package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/tonefence/relay/internal/config"
	"github.com/tonefence/relay/internal/format"
	"github.com/tonefence/relay/internal/models"
	"github.com/tonefence/relay/internal/parse"
	"github.com/tonefence/relay/internal/repository"
	"github.com/tonefence/relay/internal/transform"
	"github.com/tonefence/relay/internal/transport"
)

const (
	webhookDedupePrefix = "webhook:sms:"
	sentSIDPrefix       = "sms:sid:"
)

type resolverService struct {
	cfg       *config.Config
	repo      repository.Repository
	parties   PartyService
	transform transform.Transform
	transport transport.Transport
	redis     *redis.Client
	logger    *zap.Logger
}

// NewResolverService wires the conversation state resolver to its
// collaborators. redisClient may be nil; webhook dedupe is then disabled.
func NewResolverService(
	cfg *config.Config,
	repo repository.Repository,
	parties PartyService,
	tf transform.Transform,
	tp transport.Transport,
	redisClient *redis.Client,
	logger *zap.Logger,
) ResolverService {
	return &resolverService{
		cfg:       cfg,
		repo:      repo,
		parties:   parties,
		transform: tf,
		transport: tp,
		redis:     redisClient,
		logger:    logger,
	}
}

// HandleInbound is the single entry point for inbound SMS webhooks. It
// never sends anything to the counterpart except a fully resolved client
// reply, and it returns nil for every outcome the sender caused; non-nil
// means an internal failure the caller may log.
func (s *resolverService) HandleInbound(ctx context.Context, sms models.InboundSMS) error {
	if !s.firstDelivery(ctx, sms.ExternalID) {
		s.logger.Info("Dropping duplicate webhook delivery",
			zap.String("external_id", sms.ExternalID))
		return nil
	}

	from := s.transport.NormalizeAddress(sms.From)
	if !s.transport.IsValidAddress(from) {
		s.logger.Warn("Dropping inbound SMS with invalid sender address",
			zap.String("from", sms.From))
		return nil
	}

	party, role, err := s.parties.FindByEitherPhone(from)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.handleUnknownSender(ctx, from, sms.Body)
		}
		return fmt.Errorf("failed to resolve sender %s: %w", from, err)
	}

	if !gatePasses(party) {
		return s.handleGated(ctx, party, from, sms.Body)
	}

	if role == models.RoleCounterpart {
		return s.handleCounterpartMessage(ctx, party, sms.Body)
	}
	return s.handleClientMessage(ctx, party, sms.Body)
}

// HandleStatusCallback applies a provider delivery receipt to the message
// it belongs to. Unknown external IDs are logged and dropped.
func (s *resolverService) HandleStatusCallback(ctx context.Context, callback models.StatusCallback) error {
	err := s.repo.Message().UpdateStatusByExternalID(callback.ExternalID, callback.Status)
	if errors.Is(err, repository.ErrNotFound) {
		s.logger.Info("Status callback for unknown message",
			zap.String("external_id", callback.ExternalID),
			zap.String("status", string(callback.Status)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply status callback: %w", err)
	}
	if callback.Status == models.MessageStatusFailed && callback.ErrorCode != "" {
		s.logger.Warn("Provider reported message failure",
			zap.String("external_id", callback.ExternalID),
			zap.String("error_code", callback.ErrorCode))
	}
	return nil
}

// gatePasses reports whether a party may use the service: not stopped,
// subscription paid, and both sides activated.
func gatePasses(party *models.Party) bool {
	return party.Active && party.SubscriptionIsActive() && party.ServiceActivated
}

// firstDelivery claims the webhook's external ID in Redis. Dedupe fails
// open: if Redis is down the message is processed rather than lost.
func (s *resolverService) firstDelivery(ctx context.Context, externalID string) bool {
	if s.redis == nil || externalID == "" {
		return true
	}
	ttl := time.Duration(s.cfg.Mediation.DedupeTTLHours) * time.Hour
	ok, err := s.redis.SetNX(ctx, webhookDedupePrefix+externalID, 1, ttl).Result()
	if err != nil {
		s.logger.Warn("Webhook dedupe check failed, processing anyway", zap.Error(err))
		return true
	}
	return ok
}

// cacheSentSID maps a provider SID back to our message ID so status
// callbacks can be correlated without a table scan. Best effort.
func (s *resolverService) cacheSentSID(ctx context.Context, externalID string, messageID int64) {
	if s.redis == nil || externalID == "" {
		return
	}
	ttl := time.Duration(s.cfg.Mediation.DedupeTTLHours) * time.Hour
	if err := s.redis.Set(ctx, sentSIDPrefix+externalID, messageID, ttl).Err(); err != nil {
		s.logger.Warn("Failed to cache sent message SID",
			zap.String("external_id", externalID), zap.Error(err))
	}
}

// handleUnknownSender covers phones matching no party: answer help, parse
// a setup message, or send the generic welcome. No message records are
// written for unknown senders.
func (s *resolverService) handleUnknownSender(ctx context.Context, from, body string) error {
	if parse.ParseCommand(body) == parse.CommandHelp {
		return s.send(ctx, from, helpText)
	}

	setup, err := parse.ParseSetup(body)
	if err != nil {
		s.logger.Info("Unparseable setup message from unknown sender",
			zap.String("from", from), zap.Error(err))
		return s.send(ctx, from, welcomeErrorText)
	}

	if _, err := s.parties.CreateOrUpdate(from, setup.CounterpartPhone, s.cfg.Transport.FromNumber, setup.OwnName, setup.CounterpartName); err != nil {
		s.logger.Error("Failed to register pairing from setup message",
			zap.String("from", from), zap.Error(err))
		return s.send(ctx, from, welcomeErrorText)
	}
	return s.send(ctx, from, setupAckText)
}

// handleGated covers registered parties that fail the gate. Help is still
// answered, and START completes activation when payment is the only box
// already ticked. Everything else gets the subscription-required notice.
func (s *resolverService) handleGated(ctx context.Context, party *models.Party, from, body string) error {
	switch parse.ParseCommand(body) {
	case parse.CommandHelp:
		return s.send(ctx, from, helpText)
	case parse.CommandStart:
		if party.Active && party.SubscriptionIsActive() && !party.ServiceActivated {
			if err := s.parties.MarkActivated(party.ID); err != nil {
				s.logger.Error("Failed to activate party", zap.Int64("party_id", party.ID), zap.Error(err))
				return s.send(ctx, from, apologyText)
			}
			return s.send(ctx, from, activationConfirmText)
		}
	}
	return s.send(ctx, from, subscriptionRequiredText)
}

// handleClientMessage dispatches a message from the client: command first,
// then reply-to-pending-options, then new-message initiation.
func (s *resolverService) handleClientMessage(ctx context.Context, party *models.Party, body string) error {
	if cmd := parse.ParseCommand(body); cmd != parse.CommandNone {
		return s.handleCommand(ctx, party, cmd)
	}

	set, msg, err := s.pendingOptions(party.ID)
	switch {
	case err == nil:
		return s.resolveReply(ctx, party, set, msg, body)
	case errors.Is(err, repository.ErrNotFound):
		return s.initiateMessage(ctx, party, body)
	default:
		s.logger.Error("Failed to load pending options",
			zap.Int64("party_id", party.ID), zap.Error(err))
		return s.send(ctx, party.Phone, apologyText)
	}
}

// pendingOptions finds the option set the client's reply applies to. A
// pending filtered incoming message takes precedence over a pending
// self-initiated draft.
func (s *resolverService) pendingOptions(partyID int64) (*models.ReplyOptionSet, *models.Message, error) {
	set, msg, err := s.repo.ReplyOption().LatestUnresolved(partyID, models.DirectionIncoming)
	if err == nil || !errors.Is(err, repository.ErrNotFound) {
		return set, msg, err
	}
	return s.repo.ReplyOption().LatestUnresolved(partyID, models.DirectionOutgoingIntent)
}

// resolveReply turns the client's reply into final text, sends it to the
// counterpart, records the outgoing message, and closes the option set.
func (s *resolverService) resolveReply(ctx context.Context, party *models.Party, set *models.ReplyOptionSet, pending *models.Message, body string) error {
	reply, err := parse.ParseReply(body)
	if err != nil {
		return s.send(ctx, party.Phone, validationNotice(err))
	}

	var finalText string
	switch reply.Kind {
	case parse.ReplyOption:
		text, ok := set.Option(reply.Option)
		if !ok {
			s.logger.Error("Option set has empty option text",
				zap.Int64("option_set_id", set.ID), zap.Int("option", reply.Option))
			return s.send(ctx, party.Phone, apologyText)
		}
		finalText = text
	case parse.ReplyCustom:
		finalText, err = s.transform.ModerateCustomReply(ctx, reply.Text)
		if errors.Is(err, transform.ErrReplyRefused) {
			return s.send(ctx, party.Phone, pickOptionText)
		}
		if err != nil {
			s.logger.Error("Custom reply moderation failed",
				zap.Int64("party_id", party.ID), zap.Error(err))
			return s.send(ctx, party.Phone, apologyText)
		}
	}

	// Record the send before attempting it: a crash between the two leaves
	// a pending row the maintenance loop will pick up and retry.
	outgoing := &models.Message{
		PartyID:      party.ID,
		Sender:       party.Phone,
		Recipient:    party.CounterpartPhone,
		OriginalText: body,
		FilteredText: sql.NullString{String: finalText, Valid: true},
		Category:     pending.Category,
		Direction:    models.DirectionOutgoing,
		Status:       models.MessageStatusPending,
	}
	if err := s.repo.Message().Create(outgoing); err != nil {
		s.logger.Error("Failed to record outgoing message",
			zap.Int64("party_id", party.ID), zap.Error(err))
		return s.send(ctx, party.Phone, apologyText)
	}

	externalID, err := s.transport.Send(ctx, party.CounterpartPhone, finalText)
	if err != nil {
		s.logger.Error("Failed to send resolved reply to counterpart",
			zap.Int64("party_id", party.ID), zap.Error(err))
		errMsg := err.Error()
		if uerr := s.repo.Message().UpdateStatus(outgoing.ID, models.MessageStatusFailed, nil, &errMsg); uerr != nil {
			s.logger.Error("Failed to mark outgoing message failed",
				zap.Int64("message_id", outgoing.ID), zap.Error(uerr))
		}
		return s.send(ctx, party.Phone, apologyText)
	}
	if err := s.repo.Message().UpdateStatus(outgoing.ID, models.MessageStatusSent, &externalID, nil); err != nil {
		s.logger.Error("Failed to mark outgoing message sent",
			zap.Int64("message_id", outgoing.ID), zap.Error(err))
	}
	s.cacheSentSID(ctx, externalID, outgoing.ID)

	switch reply.Kind {
	case parse.ReplyOption:
		err = s.repo.ReplyOption().ResolveSelected(set.ID, finalText)
	case parse.ReplyCustom:
		err = s.repo.ReplyOption().ResolveCustom(set.ID, finalText)
	}
	if errors.Is(err, repository.ErrAlreadyResolved) {
		s.logger.Warn("Option set resolved concurrently",
			zap.Int64("option_set_id", set.ID))
	} else if err != nil {
		s.logger.Error("Failed to close option set",
			zap.Int64("option_set_id", set.ID), zap.Error(err))
	}

	return s.send(ctx, party.Phone, sentConfirmText)
}

// initiateMessage handles a client message with nothing pending: generate
// three phrasings and offer them. Nothing reaches the counterpart here.
func (s *resolverService) initiateMessage(ctx context.Context, party *models.Party, body string) error {
	if err := s.validateContent(body); err != nil {
		return s.send(ctx, party.Phone, validationNotice(err))
	}

	result, err := s.transform.GenerateOutgoingOptions(ctx, body)
	if err != nil {
		s.logger.Error("Failed to generate outgoing options",
			zap.Int64("party_id", party.ID), zap.Error(err))
		return s.send(ctx, party.Phone, apologyText)
	}
	if result.Degraded {
		s.logger.Warn("Outgoing options generated by degraded fallback",
			zap.Int64("party_id", party.ID))
	}

	msg := &models.Message{
		PartyID:      party.ID,
		Sender:       party.Phone,
		Recipient:    party.CounterpartPhone,
		OriginalText: body,
		Category:     categoryColumn(result.Category),
		Direction:    models.DirectionOutgoingIntent,
		Status:       models.MessageStatusPending,
	}
	if err := s.repo.Message().Create(msg); err != nil {
		s.logger.Error("Failed to record outgoing intent",
			zap.Int64("party_id", party.ID), zap.Error(err))
		return s.send(ctx, party.Phone, apologyText)
	}

	set := &models.ReplyOptionSet{
		MessageID: msg.ID,
		Option1:   result.Options[0],
		Option2:   result.Options[1],
		Option3:   result.Options[2],
	}
	if err := s.repo.ReplyOption().Create(set); err != nil {
		s.logger.Error("Failed to record reply options",
			zap.Int64("message_id", msg.ID), zap.Error(err))
		return s.send(ctx, party.Phone, apologyText)
	}

	rendered := format.OutgoingOptions(format.OutgoingRender{
		ClientName:      party.DisplayName(),
		CounterpartName: party.CounterpartDisplayName(),
		Options:         result.Options,
	})
	return s.send(ctx, party.Phone, rendered)
}

// handleCounterpartMessage filters a counterpart message and notifies the
// client with reply options. The counterpart never receives error replies;
// failures on this path are logged and swallowed.
func (s *resolverService) handleCounterpartMessage(ctx context.Context, party *models.Party, body string) error {
	if err := s.validateContent(body); err != nil {
		s.logger.Info("Dropping invalid counterpart message",
			zap.Int64("party_id", party.ID), zap.Error(err))
		return nil
	}

	result, err := s.transform.ProcessIncoming(ctx, body)
	if err != nil {
		s.logger.Error("Failed to process counterpart message",
			zap.Int64("party_id", party.ID), zap.Error(err))
		return nil
	}
	if result.Degraded {
		s.logger.Warn("Counterpart message filtered by degraded fallback",
			zap.Int64("party_id", party.ID))
	}

	msg := &models.Message{
		PartyID:      party.ID,
		Sender:       party.CounterpartPhone,
		Recipient:    party.Phone,
		OriginalText: body,
		FilteredText: sql.NullString{String: result.FilteredText, Valid: true},
		Category:     categoryColumn(result.Category),
		Direction:    models.DirectionIncoming,
		Status:       models.MessageStatusPending,
	}
	if err := s.repo.Message().Create(msg); err != nil {
		s.logger.Error("Failed to record incoming message",
			zap.Int64("party_id", party.ID), zap.Error(err))
		return nil
	}

	set := &models.ReplyOptionSet{
		MessageID: msg.ID,
		Option1:   result.Options[0],
		Option2:   result.Options[1],
		Option3:   result.Options[2],
	}
	if err := s.repo.ReplyOption().Create(set); err != nil {
		s.logger.Error("Failed to record reply options",
			zap.Int64("message_id", msg.ID), zap.Error(err))
		return nil
	}

	rendered := format.Incoming(format.IncomingRender{
		ClientName:      party.DisplayName(),
		CounterpartName: party.CounterpartDisplayName(),
		FilteredText:    result.FilteredText,
		ContextReason:   result.ContextReason,
		Options:         result.Options,
	})

	externalID, err := s.transport.Send(ctx, party.Phone, rendered)
	if err != nil {
		s.logger.Error("Failed to deliver filtered message to client",
			zap.Int64("message_id", msg.ID), zap.Error(err))
		return nil
	}
	if err := s.repo.Message().UpdateStatus(msg.ID, models.MessageStatusSent, &externalID, nil); err != nil {
		s.logger.Error("Failed to update incoming message status",
			zap.Int64("message_id", msg.ID), zap.Error(err))
	}
	s.cacheSentSID(ctx, externalID, msg.ID)
	return nil
}

func (s *resolverService) handleCommand(ctx context.Context, party *models.Party, cmd parse.Command) error {
	switch cmd {
	case parse.CommandHelp:
		return s.send(ctx, party.Phone, helpText)
	case parse.CommandStatus:
		summary, err := s.repo.Message().ActivitySummary(party.ID)
		if err != nil {
			s.logger.Error("Failed to build activity summary",
				zap.Int64("party_id", party.ID), zap.Error(err))
			return s.send(ctx, party.Phone, apologyText)
		}
		return s.send(ctx, party.Phone, statusReport(party, summary))
	case parse.CommandStop:
		if err := s.parties.Deactivate(party.ID); err != nil {
			s.logger.Error("Failed to deactivate party",
				zap.Int64("party_id", party.ID), zap.Error(err))
			return s.send(ctx, party.Phone, apologyText)
		}
		return s.send(ctx, party.Phone, stopConfirmText)
	case parse.CommandStart:
		// Gate already passed, so the party is active. Just confirm.
		return s.send(ctx, party.Phone, resumedText)
	}
	return nil
}

// send delivers a service message to a single recipient, logging failures.
func (s *resolverService) send(ctx context.Context, to, body string) error {
	if _, err := s.transport.Send(ctx, to, body); err != nil {
		s.logger.Error("Failed to send service message",
			zap.String("to", to), zap.Error(err))
		return err
	}
	return nil
}

var (
	errEmptyMessage = errors.New("message is empty")
	errTooLong      = errors.New("message is too long")
	errNoText       = errors.New("message contains no letters or numbers")
)

// validateContent enforces the inbound content rules: non-empty, bounded
// length, and at least one letter or digit (emoji-only bodies carry no
// content worth transforming).
func (s *resolverService) validateContent(body string) error {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return errEmptyMessage
	}
	if max := s.cfg.Mediation.MaxMessageLength; max > 0 && len(trimmed) > max {
		return errTooLong
	}
	for _, r := range trimmed {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return nil
		}
	}
	return errNoText
}

// validationNotice phrases a content or reply validation error for the
// client.
func validationNotice(err error) string {
	switch {
	case errors.Is(err, errEmptyMessage), errors.Is(err, parse.ErrEmptyReply):
		return "We received an empty message. Text the message you'd like to send."
	case errors.Is(err, errTooLong), errors.Is(err, parse.ErrReplyTooLong):
		return "That message is too long to send. Please shorten it and try again."
	case errors.Is(err, errNoText):
		return "We couldn't read that message. Please send it as text."
	default:
		return apologyText
	}
}

// statusReport summarizes a party's activity for the STATUS command.
func statusReport(party *models.Party, summary *models.ActivitySummary) string {
	report := fmt.Sprintf("Relay is active for %s. Messages received: %d, sent: %d.",
		party.CounterpartDisplayName(), summary.IncomingCount, summary.OutgoingCount)
	if summary.LastActivity.Valid {
		report += fmt.Sprintf(" Last activity: %s.", summary.LastActivity.Time.Format("Jan 2, 3:04 PM"))
	}
	return report
}

// categoryColumn converts a transform category to its nullable column form.
func categoryColumn(c models.MessageCategory) sql.NullString {
	if c == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: string(c), Valid: true}
}
