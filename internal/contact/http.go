package contact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// ErrRejected means the form endpoint answered with a non-2xx status.
var ErrRejected = errors.New("contact endpoint rejected submission")

// HTTPSubmitter posts the form to a hosted form-submission endpoint.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

// NewHTTPSubmitter returns a submitter for endpoint. A nil client uses
// http.DefaultClient; timeout <= 0 leaves the caller's deadline alone.
func NewHTTPSubmitter(endpoint string, client *http.Client, timeout time.Duration) (*HTTPSubmitter, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("contact endpoint is required")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSubmitter{endpoint: endpoint, client: client, timeout: timeout}, nil
}

func (s *HTTPSubmitter) Submit(ctx context.Context, f Form) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	body, contentType, err := encodeMultipart(f)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post form: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
	return nil
}

func encodeMultipart(f Form) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, field := range []struct{ name, value string }{
		{"name", f.Name},
		{"email", f.Email},
		{"message", f.Message},
	} {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
