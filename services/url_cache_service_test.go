package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPresigner struct {
	calls int
}

func (p *countingPresigner) GetPresignedR2FileReadURL(ctx context.Context, objectKey string) (string, error) {
	p.calls++
	return "https://r2.test/" + objectKey + "?sig=1", nil
}

func TestURLCacheServiceLoadsOnMiss(t *testing.T) {
	presigner := &countingPresigner{}
	svc, err := NewURLCacheService(presigner)
	require.NoError(t, err)

	url, err := svc.GetReadURL(context.Background(), "wardrobe/1/shirt.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://r2.test/wardrobe/1/shirt.jpg?sig=1", url)
	assert.Equal(t, 1, presigner.calls)

	empty, err := svc.GetReadURL(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", empty)
	assert.Equal(t, 1, presigner.calls)
}
