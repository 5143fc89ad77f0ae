package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxDownloadSize caps wardrobe photos at 20MB.
const maxDownloadSize = 20 << 20

var downloadClient = &http.Client{Timeout: 60 * time.Second}

func DownloadFile(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	res, err := downloadClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: unexpected status %d", url, res.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(res.Body, maxDownloadSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxDownloadSize {
		return nil, fmt.Errorf("download %s: file is larger than %d bytes", url, maxDownloadSize)
	}
	return data, nil
}
