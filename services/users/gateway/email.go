package gateway

import (
	"context"
	"fmt"

	"github.com/ticketswapper/ticketswapper/internal/pkg/logger"
)

type emailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendEmailConfirmation sends a confirmation link for the given address
func (g *UserGW) SendEmailConfirmation(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s?token=%s", g.cfg.Email.ConfirmURL, token)

	req := emailRequest{
		From:    g.cfg.Email.FromAddr,
		To:      email,
		Subject: "Confirm your TicketSwapper email address",
		Body:    fmt.Sprintf("Please confirm your email address by opening the following link: %s", link),
	}

	if err := g.emailClient.PostJSON(ctx, "/v1/email/send", req, nil); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	logger.Info("Sent email confirmation", logger.String("email", email))

	return nil
}
