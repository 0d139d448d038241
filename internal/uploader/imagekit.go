package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ImageKit is an Uploader backed by the ImageKit REST API. The private key is
// sent as the basic-auth username with an empty password.
type ImageKit struct {
	privateKey string
	uploadURL  string
	apiURL     string
	client     *http.Client
}

func NewImageKit(privateKey, uploadURL, apiURL string) *ImageKit {
	return &ImageKit{
		privateKey: privateKey,
		uploadURL:  uploadURL,
		apiURL:     apiURL,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (ik *ImageKit) Upload(ctx context.Context, file File, folder string) (*Asset, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, err
	}
	if err := w.WriteField("fileName", file.Name); err != nil {
		return nil, err
	}
	if err := w.WriteField("folder", folder); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ik.uploadURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.SetBasicAuth(ik.privateKey, "")

	resp, err := ik.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("image upload failed: status %d: %s", resp.StatusCode, msg)
	}

	var asset Asset
	if err := json.NewDecoder(resp.Body).Decode(&asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (ik *ImageKit) Delete(ctx context.Context, fileID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		fmt.Sprintf("%s/files/%s", ik.apiURL, fileID), nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(ik.privateKey, "")

	resp, err := ik.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image delete failed: status %d", resp.StatusCode)
	}
	return nil
}
