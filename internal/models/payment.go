package models

// PaymentOrder is the gateway order created for the application fee.
type PaymentOrder struct {
	OrderID string `json:"orderId"`
	Key     string `json:"key"`
}

// PaymentStatus reports whether the application fee has been paid.
type PaymentStatus struct {
	Paid bool `json:"paid"`
}

// PaymentVerification is the backend's signature-check result.
type PaymentVerification struct {
	Success bool `json:"success"`
}
