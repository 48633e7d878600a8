package api

import (
	"context"
	"io"
	"net/http"

	apperrors "admission-client/internal/common/errors"
)

// PDFAPI fetches the generated application PDF. Rendering happens entirely
// server-side; the client only triggers generation and streams the result.
type PDFAPI struct {
	client *Client
}

func NewPDFAPI(client *Client) *PDFAPI {
	return &PDFAPI{client: client}
}

// Generate asks the backend to (re)render the application PDF.
func (p *PDFAPI) Generate(ctx context.Context) error {
	return p.client.postJSON(ctx, "/application/pdf", nil, nil)
}

// Get streams the rendered PDF. The caller owns closing the reader.
func (p *PDFAPI) Get(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.client.baseURL+"/application/pdf", nil)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	resp, err := p.client.http.Do(req)
	if err != nil {
		return nil, apperrors.NewTransportError(err)
	}
	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		if appErr := apperrors.AsAppError(err); appErr.Code == apperrors.ErrCodeServerRejected {
			appErr.Code = apperrors.ErrCodePDFUnavailable
			return nil, appErr
		}
		return nil, err
	}
	return resp.Body, nil
}
