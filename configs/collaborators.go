package configs

import (
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/mailer"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/payment"

	"go.uber.org/zap"
)

// NewMailer picks SendGrid, then Postmark, then a mailer that drops everything.
func NewMailer(cfg *Config, log *zap.Logger) mailer.Mailer {
	switch {
	case cfg.SendGridAPIKey != "":
		log.Info("mail via sendgrid", zap.String("from", cfg.MailFrom))
		return mailer.NewSendGrid(cfg.SendGridAPIKey, cfg.MailFrom)
	case cfg.PostmarkAPIToken != "":
		log.Info("mail via postmark", zap.String("from", cfg.MailFrom))
		return mailer.NewPostmark(cfg.PostmarkAPIToken, cfg.MailFrom)
	}
	log.Warn("no mail provider configured, confirmations are not sent")
	return mailer.Noop{}
}

// NewPaymentGateway returns the remote verifier when PAYMENT_BASE_URL is set.
// Without it only cash orders can be placed.
func NewPaymentGateway(cfg *Config, log *zap.Logger) payment.Gateway {
	if cfg.PaymentBaseURL == "" {
		log.Warn("no payment gateway configured, only cash checkout works")
		return payment.Unavailable{}
	}
	return payment.NewRemote(cfg.PaymentBaseURL, cfg.PaymentSecretKey)
}
