package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// MessageService handles the contact-message inbox.
type MessageService interface {
	Submit(ctx context.Context, name, email, subject, body string) (*model.Message, error)
	Get(ctx context.Context, id uint) (*model.Message, error)
	List(ctx context.Context) ([]model.Message, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
}

// NewMessageService creates a new message service.
func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

// Submit persists a contact message. Messages are read-only afterwards.
func (s *messageService) Submit(ctx context.Context, name, email, subject, body string) (*model.Message, error) {
	message := &model.Message{
		Name:    name,
		Email:   email,
		Subject: subject,
		Body:    body,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

func (s *messageService) Get(ctx context.Context, id uint) (*model.Message, error) {
	message, err := s.messageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}
	return message, nil
}

func (s *messageService) List(ctx context.Context) ([]model.Message, error) {
	return s.messageRepo.List(ctx)
}
