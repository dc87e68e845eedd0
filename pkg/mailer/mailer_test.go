package mailer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "GH₵65.00", Money(6500))
	assert.Equal(t, "GH₵0.05", Money(5))
	assert.Equal(t, "-GH₵1.50", Money(-150))
}

func TestOrderConfirmation(t *testing.T) {
	msg := OrderConfirmation(OrderReceipt{
		OrderNumber:    "SCY-20261018-AB12",
		CustomerName:   "Ama <Owusu>",
		CustomerEmail:  "ama@soucey.test",
		RestaurantName: "Mama Ama's Kitchen",
		Lines:          []OrderLine{{Name: "Jollof Rice", Quantity: 2, LineTotal: 5000}},
		Subtotal:       5000,
		DeliveryFee:    500,
		Total:          5500,
		PaymentMethod:  "cash",
	})

	assert.Equal(t, "ama@soucey.test", msg.ToEmail)
	assert.Contains(t, msg.Subject, "SCY-20261018-AB12")
	assert.Contains(t, msg.Text, "2 x Jollof Rice")
	assert.Contains(t, msg.Text, "Total: GH₵55.00")
	assert.Contains(t, msg.HTML, "Ama &lt;Owusu&gt;")
}

func TestSendGrid_Send(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer SG.key", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sg := NewSendGrid("SG.key", "orders@soucey.test")
	sg.client.BaseURL = srv.URL + "/v3/mail/send"

	err := sg.Send(context.Background(), Message{ToEmail: "ama@soucey.test", Subject: "hi", Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hi", got["subject"])
}

func TestSendGrid_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer srv.Close()

	sg := NewSendGrid("SG.bad", "orders@soucey.test")
	sg.client.BaseURL = srv.URL

	err := sg.Send(context.Background(), Message{ToEmail: "ama@soucey.test", Subject: "hi", Text: "hello"})
	assert.ErrorContains(t, err, "401")
}
