package repositories

import (
	"context"
	"errors"
	"microblog/internal/errs"
	"microblog/internal/models"
	"microblog/internal/validators"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRepository owns the row-level operations on the messages table.
// Required-field validation happens here, not in the handlers, so direct
// callers get the same guarantees as HTTP callers.
type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

// Create inserts a new message, assigning a UUID when the caller did not
// supply an id. The returned record is re-read from storage so the
// server-assigned fields are authoritative.
func (mr *MessageRepository) Create(ctx context.Context, partial *models.MessagePartial) (*models.Message, error) {
	if err := validators.ValidateCreate(partial); err != nil {
		return nil, err
	}

	id := partial.ID
	if id == "" {
		id = uuid.NewString()
	}

	now := time.Now().UTC()
	message := models.Message{
		ID:        id,
		AuthorID:  partial.AuthorID,
		Content:   partial.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := mr.db.WithContext(ctx).Create(&message).Error; err != nil {
		return nil, err
	}

	return mr.Get(ctx, id)
}

func (mr *MessageRepository) Get(ctx context.Context, id string) (*models.Message, error) {
	var message models.Message
	if err := mr.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound(id)
		}
		return nil, err
	}
	return &message, nil
}

// GetRecent returns every message, most recently created first. Ties on
// created_at fall back to id so the order stays deterministic.
func (mr *MessageRepository) GetRecent(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	if err := mr.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// Patch merges the non-empty fields of changes onto the stored record and
// refreshes updated_at. created_at is written once at insert and never
// touched here. The read-modify-write runs in a single transaction;
// concurrent patches to the same id still resolve as last write wins.
func (mr *MessageRepository) Patch(ctx context.Context, id string, changes *models.MessagePartial) (*models.Message, error) {
	transactionErr := mr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Message
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound(id)
			}
			return err
		}

		if err := validators.ValidatePatch(changes); err != nil {
			return err
		}

		if changes.AuthorID != "" {
			existing.AuthorID = changes.AuthorID
		}
		if changes.Content != "" {
			existing.Content = changes.Content
		}

		return tx.Model(&models.Message{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"author_id":  existing.AuthorID,
				"content":    existing.Content,
				"updated_at": time.Now().UTC(),
			}).Error
	})
	if transactionErr != nil {
		return nil, transactionErr
	}

	return mr.Get(ctx, id)
}

// Delete removes the row if present. Deleting an unknown id is not an
// error.
func (mr *MessageRepository) Delete(ctx context.Context, id string) error {
	return mr.db.WithContext(ctx).Delete(&models.Message{}, "id = ?", id).Error
}
