package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrMessageNotFound = errors.New("message not found")
	ErrForbidden       = errors.New("operation not permitted for this user")
)

// MessageReader defines read operations for messages.
type MessageReader interface {
	GetByID(ctx context.Context, id int64) (*models.MessageDetailDB, error)
}

// MessageWriter defines write operations for messages.
type MessageWriter interface {
	Save(ctx context.Context, fromUsername, toUsername, body string) (*models.MessageDB, error)
	MarkRead(ctx context.Context, id int64) (*time.Time, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MessageService handles sending, fetching and read transitions, enforcing
// who may see and mutate each message.
type MessageService struct {
	reader      MessageReader
	writer      MessageWriter
	users       UserReader
	kafkaWriter KafkaWriter
}

// NewMessageService creates a new MessageService.
func NewMessageService(reader MessageReader, writer MessageWriter, users UserReader, kafkaWriter KafkaWriter) *MessageService {
	return &MessageService{
		reader:      reader,
		writer:      writer,
		users:       users,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a message lifecycle event to Kafka.
// Publishing is best-effort and never fails the request.
func (s *MessageService) publishEvent(ctx context.Context, event models.MessageEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.MessageID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

// Send creates a message from fromUsername to toUsername and publishes a
// message_sent event. The sender is the authenticated caller; the recipient
// must exist.
func (s *MessageService) Send(ctx context.Context, fromUsername, toUsername, body string) (*models.MessageDB, error) {
	recipient, err := s.users.GetByUsername(ctx, toUsername)
	if err != nil {
		logger.Log.Errorw("failed to check recipient", "err", err, "to", toUsername)
		return nil, err
	}
	if recipient == nil {
		logger.Log.Errorw("recipient does not exist", "to", toUsername)
		return nil, ErrUserDoesNotExist
	}

	msg, err := s.writer.Save(ctx, fromUsername, toUsername, body)
	if err != nil {
		logger.Log.Errorw("failed to save message", "err", err)
		return nil, err
	}

	s.publishEvent(ctx, models.MessageEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: "message_sent",
		MessageID: msg.ID,
		From:      msg.FromUsername,
		To:        msg.ToUsername,
	})

	return msg, nil
}

// Get returns a message with both party summaries. Only the sender or the
// recipient may fetch it.
func (s *MessageService) Get(ctx context.Context, id int64, requester string) (*models.MessageDetailDB, error) {
	msg, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get message", "err", err, "id", id)
		return nil, err
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}

	if requester != msg.FromUser.Username && requester != msg.ToUser.Username {
		logger.Log.Errorw("message access denied", "id", id, "requester", requester)
		return nil, ErrForbidden
	}

	return msg, nil
}

// MarkRead transitions a message to read and returns its read timestamp.
// Only the recipient may do this. Repeated calls are safe: the timestamp is
// set once and never moves. A message_read event is published only on the
// actual transition.
func (s *MessageService) MarkRead(ctx context.Context, id int64, requester string) (*time.Time, error) {
	msg, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get message", "err", err, "id", id)
		return nil, err
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}

	if requester != msg.ToUser.Username {
		logger.Log.Errorw("mark-read denied", "id", id, "requester", requester)
		return nil, ErrForbidden
	}

	wasUnread := msg.ReadAt == nil

	readAt, err := s.writer.MarkRead(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to mark message read", "err", err, "id", id)
		return nil, err
	}
	if readAt == nil {
		return nil, ErrMessageNotFound
	}

	if wasUnread {
		s.publishEvent(ctx, models.MessageEvent{
			EventID:   uuid.NewString(),
			Timestamp: time.Now().Unix(),
			Operation: "message_read",
			MessageID: id,
			From:      msg.FromUser.Username,
			To:        msg.ToUser.Username,
		})
	}

	return readAt, nil
}
