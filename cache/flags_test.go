package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/eko/gocache/lib/v4/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCache struct {
	data map[string][]byte
	err  error
}

func (m *mockCache) Get(_ context.Context, key any) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	if val, ok := m.data[key.(string)]; ok {
		return val, nil
	}
	return nil, errors.New("value not found")
}

func (m *mockCache) Set(_ context.Context, key any, value []byte, _ ...store.Option) error {
	if m.err != nil {
		return m.err
	}
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key.(string)] = value
	return nil
}

func (m *mockCache) Delete(_ context.Context, _ any) error {
	return nil
}

func (m *mockCache) Clear(_ context.Context) error {
	return nil
}

func (m *mockCache) Invalidate(_ context.Context, _ ...store.InvalidateOption) error {
	return nil
}

func (m *mockCache) GetType() string {
	return "mock"
}

func TestGetFlag(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		cache     *mockCache
		want      bool
		wantFound bool
		wantErr   bool
	}{
		{name: "miss", cache: &mockCache{}, wantFound: false},
		{name: "true", cache: &mockCache{data: map[string][]byte{"k": {1}}}, want: true, wantFound: true},
		{name: "false", cache: &mockCache{data: map[string][]byte{"k": {0}}}, want: false, wantFound: true},
		{name: "store error is a miss", cache: &mockCache{err: errors.New("boom")}, wantFound: false},
		{name: "corrupted value", cache: &mockCache{data: map[string][]byte{"k": {7, 7}}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := GetFlag(ctx, tt.cache, "k")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetFlag_NilCache(t *testing.T) {
	got, found, err := GetFlag(context.Background(), nil, "k")
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, got)
}

func TestSetFlag_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := &mockCache{}

	require.NoError(t, SetFlag(ctx, c, "yes", true))
	require.NoError(t, SetFlag(ctx, c, "no", false))

	got, found, err := GetFlag(ctx, c, "yes")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, got)

	got, found, err = GetFlag(ctx, c, "no")
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, got)
}

func TestSetFlag_StoreError(t *testing.T) {
	err := SetFlag(context.Background(), &mockCache{err: errors.New("boom")}, "k", true)
	assert.Error(t, err)
}
