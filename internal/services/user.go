package services

import (
	"context"

	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/models"
)

// UserLister defines listing operations for users.
type UserLister interface {
	ListAll(ctx context.Context) ([]models.UserSummaryDB, error)
}

// UserMessageLister lists a user's sent and received messages.
type UserMessageLister interface {
	ListFrom(ctx context.Context, username string) ([]models.MessageSentDB, error)
	ListTo(ctx context.Context, username string) ([]models.MessageReceivedDB, error)
}

// UserService serves user profiles and per-user message listings.
type UserService struct {
	reader   UserReader
	lister   UserLister
	messages UserMessageLister
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, lister UserLister, messages UserMessageLister) *UserService {
	return &UserService{
		reader:   reader,
		lister:   lister,
		messages: messages,
	}
}

// Get returns the user with the given username.
func (svc *UserService) Get(ctx context.Context, username string) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	return user, nil
}

// ListAll returns public summaries for every user.
func (svc *UserService) ListAll(ctx context.Context) ([]models.UserSummaryDB, error) {
	users, err := svc.lister.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	return users, nil
}

// MessagesFrom returns messages sent by the user.
func (svc *UserService) MessagesFrom(ctx context.Context, username string) ([]models.MessageSentDB, error) {
	if err := svc.ensureExists(ctx, username); err != nil {
		return nil, err
	}

	msgs, err := svc.messages.ListFrom(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list sent messages", "err", err, "username", username)
		return nil, err
	}

	return msgs, nil
}

// MessagesTo returns messages addressed to the user.
func (svc *UserService) MessagesTo(ctx context.Context, username string) ([]models.MessageReceivedDB, error) {
	if err := svc.ensureExists(ctx, username); err != nil {
		return nil, err
	}

	msgs, err := svc.messages.ListTo(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list received messages", "err", err, "username", username)
		return nil, err
	}

	return msgs, nil
}

func (svc *UserService) ensureExists(ctx context.Context, username string) error {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}
	return nil
}
