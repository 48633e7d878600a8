package api

import (
	"context"

	"github.com/google/uuid"

	"admission-client/internal/common/metrics"
	"admission-client/internal/models"
)

// PaymentAPI drives the application-fee flow: order creation, signature
// verification after the gateway callback, and the paid/unpaid status check
// the submission gate relies on.
type PaymentAPI struct {
	client *Client
}

func NewPaymentAPI(client *Client) *PaymentAPI {
	return &PaymentAPI{client: client}
}

type createOrderRequest struct {
	AmountMinorUnits int64  `json:"amount"`
	Currency         string `json:"currency"`
	Receipt          string `json:"receipt"`
}

// CreateOrder opens a gateway order for the fee amount in minor units. The
// receipt id is client-generated so a retried create resolves to the same
// order.
func (p *PaymentAPI) CreateOrder(ctx context.Context, amountMinorUnits int64, currency string) (*models.PaymentOrder, error) {
	var order models.PaymentOrder
	body := createOrderRequest{
		AmountMinorUnits: amountMinorUnits,
		Currency:         currency,
		Receipt:          uuid.New().String(),
	}
	if err := p.client.postJSON(ctx, "/payment/order", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

type verifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// Verify submits the gateway callback triple for server-side signature
// verification. Verification always happens server-side.
func (p *PaymentAPI) Verify(ctx context.Context, orderID, paymentID, signature string) (*models.PaymentVerification, error) {
	var result models.PaymentVerification
	body := verifyPaymentRequest{OrderID: orderID, PaymentID: paymentID, Signature: signature}
	if err := p.client.postJSON(ctx, "/payment/verify", body, &result); err != nil {
		metrics.PaymentVerificationsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	if result.Success {
		metrics.PaymentVerificationsTotal.WithLabelValues("success").Inc()
	} else {
		metrics.PaymentVerificationsTotal.WithLabelValues("rejected").Inc()
	}
	return &result, nil
}

// GetStatus reports whether the fee has been paid.
func (p *PaymentAPI) GetStatus(ctx context.Context) (*models.PaymentStatus, error) {
	var status models.PaymentStatus
	if err := p.client.getJSON(ctx, "/payment/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
