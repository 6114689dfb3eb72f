package validators

import (
	"microblog/internal/errs"
	"microblog/internal/models"
)

func ValidateCreate(partial *models.MessagePartial) error {
	if partial.AuthorID == "" {
		return errs.Validation(errs.MsgAuthorIDRequired)
	}
	if partial.Content == "" {
		return errs.Validation(errs.MsgContentRequired)
	}
	return nil
}

// ValidatePatch requires at least one mutable field to be present.
func ValidatePatch(changes *models.MessagePartial) error {
	if changes.AuthorID == "" && changes.Content == "" {
		return errs.Validation(errs.MsgAuthorIDOrContentRequired)
	}
	return nil
}
