package storage

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"booking-clone-server/config"
)

// CloudinaryUploader is the media-CDN upload backend. Uploads are signed
// form posts against the Cloudinary HTTP API.
type CloudinaryUploader struct {
	cfg    config.Cloudinary
	client *http.Client
}

func NewCloudinaryUploader(cfg config.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (u *CloudinaryUploader) Store(ctx context.Context, path, originalName, mimeType string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	name := strings.TrimSuffix(originalName, filepath.Ext(originalName))
	publicID := fmt.Sprintf("%s_%d", name, time.Now().UnixMilli())
	if u.cfg.Folder != "" {
		publicID = u.cfg.Folder + "/" + publicID
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	signatureString := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, u.cfg.APISecret)
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(signatureString)))

	form := url.Values{}
	form.Add("file", "data:"+mimeType+";base64,"+base64.StdEncoding.EncodeToString(data))
	form.Add("api_key", u.cfg.APIKey)
	form.Add("public_id", publicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", signature)

	endpoint := "https://api.cloudinary.com/v1_1/" + u.cfg.CloudName + "/image/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("reading cloudinary response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary upload failed with status %d: %s", res.StatusCode, body)
	}

	var cloudRes struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &cloudRes); err != nil {
		return "", fmt.Errorf("parsing cloudinary response: %w", err)
	}
	if cloudRes.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", cloudRes.Error.Message)
	}

	publicURL := cloudRes.SecureURL
	if publicURL == "" {
		publicURL = cloudRes.URL
	}
	if publicURL == "" {
		return "", fmt.Errorf("cloudinary returned no URL")
	}

	return publicURL, nil
}
