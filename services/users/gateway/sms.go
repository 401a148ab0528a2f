package gateway

import (
	"context"
	"fmt"

	"github.com/ticketswapper/ticketswapper/internal/pkg/logger"
)

type smsRequest struct {
	To       string `json:"to"`
	SenderID string `json:"sender_id"`
	Message  string `json:"message"`
}

// SendOTP dispatches an OTP code to the given MSISDN via the SMS provider
func (g *UserGW) SendOTP(ctx context.Context, msisdn, code string) error {
	req := smsRequest{
		To:       msisdn,
		SenderID: g.cfg.SMS.SenderID,
		Message:  fmt.Sprintf("Your TicketSwapper verification code is %s. It expires in 5 minutes.", code),
	}

	if err := g.smsClient.PostJSON(ctx, "/v1/sms/send", req, nil); err != nil {
		return fmt.Errorf("failed to send OTP SMS: %w", err)
	}

	logger.Info("Sent OTP SMS", logger.String("msisdn", msisdn))

	return nil
}
