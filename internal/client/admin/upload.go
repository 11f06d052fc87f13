package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// MaxUploadSize is the hard cap applied before any network call.
const MaxUploadSize = 5 * 1024 * 1024

// Asset references an uploaded image: the URL substituted into resource
// payloads and the id used for cleanup on delete.
type Asset struct {
	URL     string `json:"url"`
	AssetID string `json:"public_id"`
}

// Uploader sends images to the upload endpoint. Size and type violations are
// rejected locally, before the request is built.
type Uploader struct {
	client *Client
}

func NewUploader(client *Client) *Uploader {
	return &Uploader{client: client}
}

func (u *Uploader) Upload(ctx context.Context, filename string, content []byte, contentType string) (Asset, error) {
	if len(content) > MaxUploadSize {
		return Asset{}, UploadError{Reason: "file exceeds the 5MB limit"}
	}
	if !strings.HasPrefix(contentType, "image/") {
		return Asset{}, UploadError{Reason: "only image files are accepted"}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return Asset{}, err
	}
	if _, err := part.Write(content); err != nil {
		return Asset{}, err
	}
	if err := writer.Close(); err != nil {
		return Asset{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.client.baseURL+"/admin/upload", &buf)
	if err != nil {
		return Asset{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if u.client.token != "" {
		req.Header.Set("Authorization", "Bearer "+u.client.token)
	}

	resp, err := u.client.httpClient.Do(req)
	if err != nil {
		return Asset{}, ServerError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Asset{}, ServerError{Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode == http.StatusUnauthorized {
		if u.client.onUnauthorized != nil {
			u.client.onUnauthorized()
		}
		return Asset{}, AuthError{}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Asset{}, ServerError{Status: resp.StatusCode, Message: serverMessage(raw)}
	}

	payload, err := unwrap(resp.StatusCode, raw)
	if err != nil {
		return Asset{}, err
	}
	var asset Asset
	if err := json.Unmarshal(payload, &asset); err != nil {
		return Asset{}, ServerError{Status: resp.StatusCode, Err: err}
	}
	// A 2xx without a URL is still a failure.
	if asset.URL == "" {
		return Asset{}, UploadError{Reason: "upload response missing url"}
	}
	return asset, nil
}

// Remove deletes a stored asset. Callers treat failures as best-effort
// cleanup noise.
func (u *Uploader) Remove(ctx context.Context, assetID string) error {
	if assetID == "" {
		return nil
	}
	status, raw, err := u.client.do(ctx, http.MethodDelete, "/admin/upload", map[string]string{"public_id": assetID})
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return ServerError{Status: status, Message: serverMessage(raw)}
	}
	return nil
}
