package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"suggestions": []}`, `{"suggestions": []}`},
		{"fence with language tag", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fence without language tag", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  ```json\n{}\n```  ", "{}"},
		{"fence on same line as body", "```{\"a\": 1}```", `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.in))
		})
	}
}

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{
			name:   "prose around object",
			in:     `Here are your suggestions: {"suggestions": []} hope you like them`,
			want:   `{"suggestions": []}`,
			wantOK: true,
		},
		{
			name:   "braces inside string values",
			in:     `x {"title": "a {weird} title", "n": 1} y`,
			want:   `{"title": "a {weird} title", "n": 1}`,
			wantOK: true,
		},
		{
			name:   "escaped quote inside string",
			in:     `{"title": "say \"hi\" {now}"}`,
			want:   `{"title": "say \"hi\" {now}"}`,
			wantOK: true,
		},
		{
			name:   "nested objects",
			in:     `{"a": {"b": {"c": 1}}} trailing`,
			want:   `{"a": {"b": {"c": 1}}}`,
			wantOK: true,
		},
		{name: "no object", in: "nothing here", wantOK: false},
		{name: "unbalanced", in: `{"a": 1`, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := firstJSONObject(tt.in)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParsePassResponse(t *testing.T) {
	t.Run("clean json", func(t *testing.T) {
		ideas, ok := parsePassResponse(`{"suggestions": [{"title": "Chess Set"}]}`)
		require.True(t, ok)
		require.Len(t, ideas, 1)
		assert.Equal(t, "Chess Set", ideas[0].Title)
	})

	t.Run("fenced json", func(t *testing.T) {
		ideas, ok := parsePassResponse("```json\n{\"suggestions\": [{\"title\": \"Mug\"}]}\n```")
		require.True(t, ok)
		require.Len(t, ideas, 1)
		assert.Equal(t, "Mug", ideas[0].Title)
	})

	t.Run("json wrapped in prose", func(t *testing.T) {
		ideas, ok := parsePassResponse(`Sure! {"suggestions": [{"title": "Candle"}, {"title": "Scarf"}]} Enjoy.`)
		require.True(t, ok)
		require.Len(t, ideas, 2)
	})

	t.Run("unusable text", func(t *testing.T) {
		_, ok := parsePassResponse("the model refused to answer")
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := parsePassResponse("")
		assert.False(t, ok)
	})
}
