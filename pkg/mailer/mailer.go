// Package mailer sends transactional email such as order confirmations.
package mailer

import (
	"context"
	"fmt"
	"html"
	"strings"
)

type Message struct {
	ToName  string
	ToEmail string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Noop drops every message.
type Noop struct{}

func (Noop) Send(context.Context, Message) error { return nil }

type OrderLine struct {
	Name      string
	Quantity  int
	LineTotal int64
}

type OrderReceipt struct {
	OrderNumber    string
	CustomerName   string
	CustomerEmail  string
	RestaurantName string
	Lines          []OrderLine
	Subtotal       int64
	DeliveryFee    int64
	Total          int64
	PaymentMethod  string
}

// OrderConfirmation renders the confirmation mail for a placed order.
func OrderConfirmation(r OrderReceipt) Message {
	var text, body strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\nThank you for ordering from %s. Your order number is %s.\n\n",
		r.CustomerName, r.RestaurantName, r.OrderNumber)
	fmt.Fprintf(&body, "<p>Hi %s,</p><p>Thank you for ordering from <strong>%s</strong>. Your order number is <strong>%s</strong>.</p><ul>",
		html.EscapeString(r.CustomerName), html.EscapeString(r.RestaurantName), html.EscapeString(r.OrderNumber))
	for _, l := range r.Lines {
		fmt.Fprintf(&text, "  %d x %s  %s\n", l.Quantity, l.Name, Money(l.LineTotal))
		fmt.Fprintf(&body, "<li>%d x %s &ndash; %s</li>", l.Quantity, html.EscapeString(l.Name), Money(l.LineTotal))
	}
	fmt.Fprintf(&text, "\nSubtotal: %s\nDelivery: %s\nTotal: %s\nPayment: %s\n",
		Money(r.Subtotal), Money(r.DeliveryFee), Money(r.Total), r.PaymentMethod)
	fmt.Fprintf(&body, "</ul><p>Subtotal: %s<br>Delivery: %s<br><strong>Total: %s</strong><br>Payment: %s</p>",
		Money(r.Subtotal), Money(r.DeliveryFee), Money(r.Total), html.EscapeString(r.PaymentMethod))

	return Message{
		ToName:  r.CustomerName,
		ToEmail: r.CustomerEmail,
		Subject: "Your Soucey order " + r.OrderNumber,
		Text:    text.String(),
		HTML:    body.String(),
	}
}

// Money formats an amount of pesewas as cedis.
func Money(pesewas int64) string {
	sign := ""
	if pesewas < 0 {
		sign = "-"
		pesewas = -pesewas
	}
	return fmt.Sprintf("%sGH₵%d.%02d", sign, pesewas/100, pesewas%100)
}
