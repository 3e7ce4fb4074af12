package email

import (
	"context"
	"errors"

	"scent-match/internal/domain"
)

// Sender define la interfaz para compartir recetas por correo.
type Sender interface {
	SendRecipeSummary(ctx context.Context, toEmail, personaName string, session domain.RecipeSession) error
}

type disabledSender struct {
	reason string
}

// NewDisabledSender devuelve un Sender que siempre falla con el motivo dado.
// Se usa cuando el SMTP no esta configurado.
func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendRecipeSummary(_ context.Context, _, _ string, _ domain.RecipeSession) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
