package configs

import (
	"testing"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/mailer"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/payment"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewMailer_Selection(t *testing.T) {
	log := zap.NewNop()

	assert.IsType(t, &mailer.SendGrid{}, NewMailer(&Config{SendGridAPIKey: "sg", PostmarkAPIToken: "pm"}, log))
	assert.IsType(t, &mailer.Postmark{}, NewMailer(&Config{PostmarkAPIToken: "pm"}, log))
	assert.IsType(t, mailer.Noop{}, NewMailer(&Config{}, log))
}

func TestNewPaymentGateway_Selection(t *testing.T) {
	log := zap.NewNop()

	assert.IsType(t, payment.Unavailable{}, NewPaymentGateway(&Config{}, log))
	assert.IsType(t, &payment.Remote{}, NewPaymentGateway(&Config{PaymentBaseURL: "https://pay.example"}, log))
}
