package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"giftwise/canon"
)

func TestCanonicalizeCosmeticVariantsShareKey(t *testing.T) {
	cases := []struct {
		name   string
		inputs []string
		want   string
	}{
		{
			name:   "case punctuation and plural",
			inputs: []string{"LEGO Set!!!", "Lego sets", "lego set"},
			want:   "lego set",
		},
		{
			name:   "ampersand substitution survives stop-word removal",
			inputs: []string{"Spa & Self-Care Kit", "spa & self care kit"},
			want:   "spa and self care kit",
		},
		{
			name:   "original and token is dropped",
			inputs: []string{"Salt and Pepper Mills", "Salt Pepper Mills"},
			want:   "salt pepper mill",
		},
		{
			name:   "possessive apostrophe",
			inputs: []string{"Dad's Coffee Mug", "Dads Coffee Mugs"},
			want:   "dad coffee mug",
		},
		{
			name:   "accents stripped",
			inputs: []string{"Café Sampler", "Cafe Sampler"},
			want:   "cafe sampler",
		},
		{
			name:   "stop words removed",
			inputs: []string{"A Gift for the Home", "Home"},
			want:   "home",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, in := range tc.inputs {
				assert.Equal(t, tc.want, canon.Canonicalize(in), "input %q", in)
			}
		})
	}
}

func TestCanonicalizeEdgeCases(t *testing.T) {
	assert.Equal(t, "", canon.Canonicalize(""))
	assert.Equal(t, "", canon.Canonicalize("   "))
	assert.Equal(t, "", canon.Canonicalize("!!! ---"))

	// All-stop-word titles keep their tokens instead of emptying out.
	assert.Equal(t, "the gift", canon.Canonicalize("The Gift"))

	// Plural rules.
	assert.Equal(t, "box puzzle", canon.Canonicalize("Boxes of Puzzles"))
	assert.Equal(t, "beach towel", canon.Canonicalize("Beach Towels"))
	assert.Equal(t, "chess glass", canon.Canonicalize("Chess Glass"))
	assert.Equal(t, "dish set", canon.Canonicalize("Dishes Set"))
	assert.Equal(t, "accessory", canon.Canonicalize("Accessories"))
}

func TestCanonicalizeIsStable(t *testing.T) {
	titles := []string{"Spa & Self-Care Kit", "LEGO Set!!!", "Dad's Coffee Mug", "日本語", ""}
	for _, title := range titles {
		first := canon.Canonicalize(title)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, canon.Canonicalize(title))
		}
	}
}

func TestCanonicalizeDistinctIdeasStayDistinct(t *testing.T) {
	a := canon.Canonicalize("Noise-Cancelling Headphones")
	b := canon.Canonicalize("Espresso Machine")
	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, a)
	assert.NotEmpty(t, b)
}
