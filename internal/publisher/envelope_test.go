package publisher_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edgard/restobot/internal/database"
	"github.com/edgard/restobot/internal/publisher"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, html, want string
	}{
		{"empty", "   ", ""},
		{"tags", "<p>Hello <b>world</b></p>", "Hello world"},
		{"blocks", "<p>one</p><p>two</p><ul><li>a</li><li>b</li></ul>", "one two a b"},
		{"line breaks", "first<br>second<br/>third", "first second third"},
		{"entities", "Fish &amp; chips", "Fish & chips"},
		{"scripts dropped", "<p>ok</p><script>alert(1)</script>", "ok"},
		{"whitespace", "  many \n\n  spaces\t here ", "many spaces here"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, publisher.PlainText(tt.html))
		})
	}
}

func TestBuildEnvelope_Limits(t *testing.T) {
	t.Parallel()

	news := &database.News{Title: "Big", Body: strings.Repeat("ж", 5000)}
	env := publisher.BuildEnvelope(news, "https://food.example.com")

	assert.Len(t, []rune(env.Text), publisher.MaxTextLength)
	assert.Len(t, []rune(env.Caption), publisher.MaxCaptionLength)
	assert.True(t, strings.HasPrefix(env.Text, "📰 Big\n\n"))
	assert.Empty(t, env.Photos)
}

func TestMediaGroup(t *testing.T) {
	t.Parallel()

	env := publisher.Envelope{Caption: "cap", Photos: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}}
	media := publisher.MediaGroup(env)
	assert.Len(t, media, 10)
	assert.Equal(t, "cap", media[0]["caption"])
	assert.NotContains(t, media[9], "caption")
}
