package gemini

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

func textResponse(parts ...string) *genai.GenerateContentResponse {
	genaiParts := make([]*genai.Part, len(parts))
	for i, p := range parts {
		genaiParts[i] = &genai.Part{Text: p}
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: genaiParts}},
		},
	}
}

func TestExtractText(t *testing.T) {
	t.Run("応答テキストは前後の空白を除いて返すのだ", func(t *testing.T) {
		text, err := extractText(textResponse("\n# Panel 1\nDescription: a\n"))
		require.NoError(t, err)
		assert.Equal(t, "# Panel 1\nDescription: a", text)
	})

	t.Run("複数パートは連結されるのだ", func(t *testing.T) {
		text, err := extractText(textResponse("Hello, ", "world"))
		require.NoError(t, err)
		assert.Equal(t, "Hello, world", text)
	})

	t.Run("nil応答は生成エラーなのだ", func(t *testing.T) {
		_, err := extractText(nil)
		assert.True(t, errors.Is(err, domain.ErrEmptyResponse))
	})

	t.Run("候補なしは生成エラーなのだ", func(t *testing.T) {
		_, err := extractText(&genai.GenerateContentResponse{})
		assert.True(t, errors.Is(err, domain.ErrEmptyResponse))
	})

	t.Run("空白だけのテキストも生成エラーなのだ", func(t *testing.T) {
		_, err := extractText(textResponse("   \n\t  "))
		assert.True(t, errors.Is(err, domain.ErrEmptyResponse))
	})
}
