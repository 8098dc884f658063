package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCacheRefreshReplacesRecords(t *testing.T) {
	cache := NewListCache[widget]()

	err := cache.Refresh(context.Background(), func(context.Context) ([]widget, error) {
		return []widget{{ID: 1, Name: "Mouse"}, {ID: 2, Name: "Teclado"}}, nil
	})
	require.NoError(t, err)

	assert.Len(t, cache.Records(), 2)
	assert.False(t, cache.Loading())
}

func TestListCacheRefreshFailureEmptiesRecords(t *testing.T) {
	cache := NewListCache[widget]()

	require.NoError(t, cache.Refresh(context.Background(), func(context.Context) ([]widget, error) {
		return []widget{{ID: 1, Name: "Mouse"}}, nil
	}))

	err := cache.Refresh(context.Background(), func(context.Context) ([]widget, error) {
		return nil, errors.New("connection refused")
	})
	require.Error(t, err)

	assert.Empty(t, cache.Records())
	assert.False(t, cache.Loading())
}

func TestListCacheLoadingDuringRefresh(t *testing.T) {
	cache := NewListCache[widget]()

	var loadingDuringFetch bool
	err := cache.Refresh(context.Background(), func(context.Context) ([]widget, error) {
		loadingDuringFetch = cache.Loading()

		return []widget{}, nil
	})
	require.NoError(t, err)

	assert.True(t, loadingDuringFetch)
	assert.False(t, cache.Loading())
}
