package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"orderdesk/internal/models"

	"github.com/go-playground/validator/v10"
)

// OrderSubmission is the wire shape of an asynchronous order placed through
// the message channel instead of the HTTP form.
type OrderSubmission struct {
	UserID string            `json:"user_id" validate:"required"`
	Draft  models.OrderDraft `json:"draft"`
}

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s; ", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s; ", fe.Namespace(), fe.Tag())
		}
	}
	s := b.String()
	if len(s) > 2 {
		s = s[:len(s)-2]
	}
	return s
}

// HandleMessage runs the commit sequence for a submission consumed from the
// broker. Decode and validation failures are wrapped in their sentinels so
// the consumer can tell non-retryable messages apart.
func (s *Service) HandleMessage(ctx context.Context, payload []byte) error {
	var sub OrderSubmission
	if err := json.Unmarshal(payload, &sub); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := s.v.Struct(sub); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return fmt.Errorf("%w: %s", ErrValidation, humanizeValidationErrors(verrs))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	_, err := s.SubmitDraft(ctx, sub.UserID, sub.Draft)
	return err
}
