package productsearch

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutCredentialsIsOffline(t *testing.T) {
	t.Setenv("PRODUCT_SEARCH_BASE_URL", "")
	t.Setenv("PRODUCT_SEARCH_API_KEY", "")

	c := New()
	assert.True(t, c.Offline())
}

func TestOfflineFindBestIsDeterministic(t *testing.T) {
	c := &Client{offline: true}

	first, err := c.FindBest(context.Background(), "Leather Journal", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := c.FindBest(context.Background(), "Leather Journal", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first.ID, "offline-"))
	assert.Contains(t, first.Title, "Leather Journal")
	assert.Contains(t, first.DetailURL, "leather-journal")
}

func TestOfflineFindBestHonorsPriceBounds(t *testing.T) {
	c := &Client{offline: true}
	min := int64(20000)
	max := int64(25000)

	p, err := c.FindBest(context.Background(), "Espresso Maker", &min, &max)
	require.NoError(t, err)
	require.NotNil(t, p)

	cents := parsePriceDisplay(t, p.PriceDisplay)
	assert.GreaterOrEqual(t, cents, min)
	assert.LessOrEqual(t, cents, max)
}

func TestFindBestEmptyQueryReturnsNoMatch(t *testing.T) {
	c := &Client{offline: true}

	p, err := c.FindBest(context.Background(), "", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Leather Journal", "leather-journal"},
		{"Café Sampler!", "caf-sampler"},
		{"  spaced  out  ", "spaced--out"},
		{"???", "product"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in), "slugify(%q)", tt.in)
	}
}

func parsePriceDisplay(t *testing.T, display string) int64 {
	t.Helper()
	require.True(t, strings.HasPrefix(display, "$"))
	parts := strings.SplitN(strings.TrimPrefix(display, "$"), ".", 2)
	require.Len(t, parts, 2)
	dollars, err := strconv.ParseInt(parts[0], 10, 64)
	require.NoError(t, err)
	cents, err := strconv.ParseInt(parts[1], 10, 64)
	require.NoError(t, err)
	return dollars*100 + cents
}
