package productsearch

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Offline catalog templates. The merchant names are stable so the same query
// always resolves to the same mock product.
var offlineMerchants = []string{
	"Maker & Main",
	"Bright Harbor Goods",
	"The Curated Shelf",
	"Northwind Supply",
	"Juniper Lane",
}

// offlineMatch builds a deterministic product for a query. The price display
// honors the requested range so downstream rendering stays sensible.
func offlineMatch(query string, minCents, maxCents *int64) *Product {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(query))))
	sum := h.Sum32()

	merchant := offlineMerchants[int(sum)%len(offlineMerchants)]
	id := fmt.Sprintf("offline-%08x", sum)
	slug := slugify(query)

	priceCents := int64(1500 + sum%9000)
	if minCents != nil && priceCents < *minCents {
		priceCents = *minCents
	}
	if maxCents != nil && priceCents > *maxCents {
		priceCents = *maxCents
	}

	return &Product{
		ID:           id,
		Title:        fmt.Sprintf("%s - %s", query, merchant),
		ImageURL:     fmt.Sprintf("https://images.example.com/products/%s.jpg", slug),
		PriceDisplay: fmt.Sprintf("$%d.%02d", priceCents/100, priceCents%100),
		DetailURL:    fmt.Sprintf("https://shop.example.com/products/%s", slug),
	}
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "product"
	}
	return out
}
