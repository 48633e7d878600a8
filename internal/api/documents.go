package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	apperrors "admission-client/internal/common/errors"
	"admission-client/internal/common/metrics"
	"admission-client/internal/models"
)

// DocumentsAPI manages certificate uploads. Uploads are multipart and carry
// a client-generated idempotency key so a retried upload of the same file
// does not create duplicates server-side.
type DocumentsAPI struct {
	client *Client
}

func NewDocumentsAPI(client *Client) *DocumentsAPI {
	return &DocumentsAPI{client: client}
}

// Upload sends one file for the given document type.
func (d *DocumentsAPI) Upload(ctx context.Context, documentType, fileName string, content io.Reader) (*models.Document, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("type", documentType); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("read upload content: %w", err))
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.client.baseURL+"/documents", &buf)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Idempotency-Key", uuid.New().String())

	var doc models.Document
	if err := d.client.doJSON(req, "/documents", &doc); err != nil {
		metrics.DocumentUploadsTotal.WithLabelValues(documentType, "failure").Inc()
		if apperrors.IsUnauthorized(err) {
			return nil, err
		}
		if apperrors.IsKind(err, apperrors.KindTransport) {
			return nil, apperrors.NewUploadFailedError(documentType, err)
		}
		return nil, err
	}
	metrics.DocumentUploadsTotal.WithLabelValues(documentType, "success").Inc()
	return &doc, nil
}

// List returns all documents uploaded so far.
func (d *DocumentsAPI) List(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	if err := d.client.getJSON(ctx, "/documents", nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Delete removes one uploaded document by id.
func (d *DocumentsAPI) Delete(ctx context.Context, documentID string) error {
	return d.client.deleteJSON(ctx, "/documents/"+documentID, nil)
}
