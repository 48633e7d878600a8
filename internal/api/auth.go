package api

import (
	"context"

	"admission-client/internal/models"
)

// AuthAPI implements the phone OTP sign-in handshake.
type AuthAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

// VerifyOTPResult is the successful handshake payload.
type VerifyOTPResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// SendOTP asks the backend to deliver a one-time code to the phone number.
func (a *AuthAPI) SendOTP(ctx context.Context, phone string) error {
	body := map[string]string{"phone": phone}
	return a.client.postJSON(ctx, "/auth/send-otp", body, nil)
}

// VerifyOTP exchanges the code for a bearer token and user profile.
func (a *AuthAPI) VerifyOTP(ctx context.Context, phone, otp string) (*VerifyOTPResult, error) {
	body := map[string]string{"phone": phone, "otp": otp}
	var result VerifyOTPResult
	if err := a.client.postJSON(ctx, "/auth/verify-otp", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
