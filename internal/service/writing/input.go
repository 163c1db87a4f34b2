package writing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/linglual-backend/internal/config"
	"github.com/heartmarshall/linglual-backend/internal/domain"
	"github.com/heartmarshall/linglual-backend/internal/validate"
)

// CreateRecordInput is a new writing submission.
type CreateRecordInput struct {
	Content string `json:"content" validate:"notblank"`
	Topic   string `json:"topic" validate:"notblank"`
}

// Validate checks required fields and the configured length limits.
func (i CreateRecordInput) Validate(limits config.WritingConfig) error {
	if err := validate.Struct(i); err != nil {
		return err
	}
	return checkLengths(i.Content, i.Topic, limits)
}

func (i *CreateRecordInput) trim() {
	i.Content = strings.TrimSpace(i.Content)
	i.Topic = strings.TrimSpace(i.Topic)
}

// UpdateRecordInput replaces the text of an existing record.
type UpdateRecordInput struct {
	ID      uuid.UUID `json:"id" validate:"required"`
	Content string    `json:"content" validate:"notblank"`
	Topic   string    `json:"topic" validate:"notblank"`
}

// Validate checks required fields and the configured length limits.
func (i UpdateRecordInput) Validate(limits config.WritingConfig) error {
	if err := validate.Struct(i); err != nil {
		return err
	}
	return checkLengths(i.Content, i.Topic, limits)
}

func (i *UpdateRecordInput) trim() {
	i.Content = strings.TrimSpace(i.Content)
	i.Topic = strings.TrimSpace(i.Topic)
}

func checkLengths(content, topic string, limits config.WritingConfig) error {
	var errs []domain.FieldError
	if err := validate.Field("content", content, fmt.Sprintf("max=%d", limits.MaxContentLength)); err != nil {
		errs = append(errs, fieldErrors(err)...)
	}
	if err := validate.Field("topic", topic, fmt.Sprintf("max=%d", limits.MaxTopicLength)); err != nil {
		errs = append(errs, fieldErrors(err)...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func fieldErrors(err error) []domain.FieldError {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return []domain.FieldError{{Field: "input", Message: err.Error()}}
}

func validateTopic(topic string, limits config.WritingConfig) error {
	if strings.TrimSpace(topic) == "" {
		return domain.NewValidationError("topic", "required")
	}
	return validate.Field("topic", topic, fmt.Sprintf("max=%d", limits.MaxTopicLength))
}
