package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgroHub-Uni-RV/Ypetec/dto"
)

func TestShowcaseServesFromCache(t *testing.T) {
	mr, rdb := newTestRedis(t)
	svc := NewShowcaseService(nil, rdb)
	ctx := context.Background()

	cached := []dto.ShowcaseEntry{
		{ID: 1, ProjectID: 2, Title: "Horta Inteligente", Area: "Agro", Featured: true},
	}
	data, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, mr.Set("showcase:active", string(data)))

	// db is nil: a cache miss would panic, so success proves the cached
	// payload was served.
	entries, err := svc.Showcase(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Horta Inteligente", entries[0].Title)
	assert.True(t, entries[0].Featured)
}

func TestInvalidateShowcase(t *testing.T) {
	mr, rdb := newTestRedis(t)
	svc := NewShowcaseService(nil, rdb)
	ctx := context.Background()

	require.NoError(t, mr.Set("showcase:active", "[]"))
	svc.InvalidateShowcase(ctx)
	assert.False(t, mr.Exists("showcase:active"))
}

func TestInvalidateShowcaseWithoutRedis(t *testing.T) {
	svc := NewShowcaseService(nil, nil)
	assert.NotPanics(t, func() {
		svc.InvalidateShowcase(context.Background())
	})
}
