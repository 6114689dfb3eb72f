package services

import (
	"context"
	"microblog/internal/models"
	"microblog/internal/repositories"
)

type MessageService struct {
	messageRepo *repositories.MessageRepository
}

func NewMessageService(messageRepo *repositories.MessageRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
	}
}

func (ms *MessageService) Create(ctx context.Context, partial *models.MessagePartial) (*models.Message, error) {
	return ms.messageRepo.Create(ctx, partial)
}

func (ms *MessageService) Get(ctx context.Context, id string) (*models.Message, error) {
	return ms.messageRepo.Get(ctx, id)
}

func (ms *MessageService) GetRecent(ctx context.Context) ([]models.Message, error) {
	return ms.messageRepo.GetRecent(ctx)
}

func (ms *MessageService) Patch(ctx context.Context, id string, changes *models.MessagePartial) (*models.Message, error) {
	return ms.messageRepo.Patch(ctx, id, changes)
}

func (ms *MessageService) Delete(ctx context.Context, id string) error {
	return ms.messageRepo.Delete(ctx, id)
}
