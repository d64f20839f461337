package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

const (
	DefaultDriveUploadURL = "https://www.googleapis.com/upload/drive/v3/files?uploadType=multipart"
	DefaultDriveFilesURL  = "https://www.googleapis.com/drive/v3/files"
)

// UpstreamError is a non-success response from a Google endpoint.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("google responded with status %d", e.StatusCode)
}

// Details returns the upstream body as JSON when it is JSON, else as text.
func (e *UpstreamError) Details() any {
	var v any
	if err := json.Unmarshal(e.Body, &v); err == nil {
		return v
	}
	return string(e.Body)
}

// DriveClient talks to the Drive v3 REST API. The caller supplies an HTTP
// client that already carries the credential.
type DriveClient struct {
	UploadURL string
	FilesURL  string
}

func NewDriveClient() *DriveClient {
	return &DriveClient{UploadURL: DefaultDriveUploadURL, FilesURL: DefaultDriveFilesURL}
}

// Upload sends metadata and content as one multipart/related request, then
// shares the file with anyone holding the link. The returned map is Drive's
// response body with webViewLink filled in.
func (d *DriveClient) Upload(ctx context.Context, client *http.Client, name, mimeType string, content io.Reader) (map[string]any, error) {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	metaPart, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"application/json; charset=UTF-8"}})
	if err != nil {
		return nil, err
	}
	if err := json.NewEncoder(metaPart).Encode(map[string]string{"name": name}); err != nil {
		return nil, err
	}

	filePart, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {mimeType}})
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(filePart, content); err != nil {
		return nil, fmt.Errorf("read upload content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.UploadURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "multipart/related; boundary="+mw.Boundary())

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("drive upload: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read drive response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: raw}
	}

	var file map[string]any
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode drive response: %w", err)
	}
	fileID, _ := file["id"].(string)
	if fileID == "" {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: raw}
	}

	// Sharing is best effort; the upload itself already succeeded.
	file["shared"] = d.shareWithAnyone(ctx, client, fileID) == nil
	file["webViewLink"] = WebViewLink(fileID)
	return file, nil
}

func (d *DriveClient) shareWithAnyone(ctx context.Context, client *http.Client, fileID string) error {
	payload := strings.NewReader(`{"role":"reader","type":"anyone"}`)
	url := fmt.Sprintf("%s/%s/permissions", strings.TrimRight(d.FilesURL, "/"), fileID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{StatusCode: resp.StatusCode}
	}
	return nil
}

func WebViewLink(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/file/d/%s/view", fileID)
}

// DriveUploader stores gallery photos in Drive under a fixed credential,
// typically a service account.
type DriveUploader struct {
	Drive  *DriveClient
	Client *http.Client
}

func (u *DriveUploader) Upload(ctx context.Context, name, contentType string, content io.Reader) (string, error) {
	file, err := u.Drive.Upload(ctx, u.Client, name, contentType, content)
	if err != nil {
		return "", err
	}
	link, _ := file["webViewLink"].(string)
	return link, nil
}
