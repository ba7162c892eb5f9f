package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

// buildPanelFixture は n コマ分の整形済みテキストを組み立てるのだ。
func buildPanelFixture(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("# Panel %d\n", i))
		sb.WriteString(fmt.Sprintf("Description: scene %d, dramatic lighting\n", i))
		sb.WriteString(fmt.Sprintf("Text: \"Hero: Line %d!\"\n", i))
	}
	return sb.String()
}

func TestExtractPanels(t *testing.T) {
	t.Run("6コマの整形済みテキストは6件のレコードになるのだ", func(t *testing.T) {
		panels, err := ExtractPanels(buildPanelFixture(6))
		require.NoError(t, err)
		require.Len(t, panels, 6)

		// ブロックの出現順が保持されること
		for i, p := range panels {
			assert.Equal(t, fmt.Sprintf("scene %d, dramatic lighting", i+1), p.Description)
			assert.Equal(t, fmt.Sprintf("Hero: Line %d!", i+1), p.Text)
		}
	})

	t.Run("コマ数が少ないと検証エラーになるのだ", func(t *testing.T) {
		_, err := ExtractPanels(buildPanelFixture(5))
		require.Error(t, err)

		var countErr *domain.PanelCountError
		require.ErrorAs(t, err, &countErr)
		assert.Equal(t, 6, countErr.Expected)
		assert.Equal(t, 5, countErr.Actual)
		assert.Contains(t, err.Error(), "6")
		assert.Contains(t, err.Error(), "5")
	})

	t.Run("コマ数が多くても検証エラーになるのだ", func(t *testing.T) {
		_, err := ExtractPanels(buildPanelFixture(7))

		var countErr *domain.PanelCountError
		require.ErrorAs(t, err, &countErr)
		assert.Equal(t, 7, countErr.Actual)
		assert.Contains(t, err.Error(), "7")
	})

	t.Run("空のテキストは0件として検証エラーになるのだ", func(t *testing.T) {
		_, err := ExtractPanels("")

		var countErr *domain.PanelCountError
		require.ErrorAs(t, err, &countErr)
		assert.Equal(t, 0, countErr.Actual)
	})

	t.Run("Description行がないコマは代替文になるのだ", func(t *testing.T) {
		text := "# Panel 1\nText: \"Hero: Hello\"\n" + strings.TrimPrefix(buildPanelFixture(6), "# Panel 1\nDescription: scene 1, dramatic lighting\nText: \"Hero: Line 1!\"\n")
		panels, err := ExtractPanels(text)
		require.NoError(t, err)

		assert.Equal(t, FallbackDescription, panels[0].Description)
		assert.Equal(t, "Hero: Hello", panels[0].Text)
	})

	t.Run("台詞のないコマは省略記号になるのだ", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("# Panel 1\nDescription: silent forest, morning mist\n")
		for i := 2; i <= 6; i++ {
			sb.WriteString(fmt.Sprintf("# Panel %d\nDescription: scene %d\nText: \"A: hi\"\n", i, i))
		}

		panels, err := ExtractPanels(sb.String())
		require.NoError(t, err)
		assert.Equal(t, FallbackDialogue, panels[0].Text)
	})

	t.Run("複数の台詞は半角スペース1つで連結されるのだ", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("# Panel 1\nDescription: two heroes arguing\n")
		sb.WriteString("Text: \"A: First line.\"\n")
		sb.WriteString("Text: \"B: Second line.\"\n")
		for i := 2; i <= 6; i++ {
			sb.WriteString(fmt.Sprintf("# Panel %d\nDescription: scene %d\nText: \"A: hi\"\n", i, i))
		}

		panels, err := ExtractPanels(sb.String())
		require.NoError(t, err)
		assert.Equal(t, "A: First line. B: Second line.", panels[0].Text)
	})

	t.Run("フィールド名の大文字小文字は区別しないのだ", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("# Panel 1\ndescription: lowercase scene\ntext: \"A: hi\"\n")
		for i := 2; i <= 6; i++ {
			sb.WriteString(fmt.Sprintf("# Panel %d\nDESCRIPTION: scene %d\nTEXT: \"A: hi\"\n", i, i))
		}

		panels, err := ExtractPanels(sb.String())
		require.NoError(t, err)
		assert.Equal(t, "lowercase scene", panels[0].Description)
		assert.Equal(t, "scene 2", panels[1].Description)
	})

	t.Run("区切り行の大文字小文字は区別するのだ", func(t *testing.T) {
		// "# panel N" は区切りとして扱われず、全体が1ブロックと数えられてエラーになる
		text := strings.ReplaceAll(buildPanelFixture(6), "# Panel", "# panel")
		_, err := ExtractPanels(text)

		var countErr *domain.PanelCountError
		require.ErrorAs(t, err, &countErr)
		assert.Equal(t, 1, countErr.Actual)
	})

	t.Run("仕様書の例と同じ形式を受理するのだ", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("# Panel 1\nDescription: hero, city\nText: \"Hero: Stop!\"\n")
		for i := 2; i <= 6; i++ {
			sb.WriteString(fmt.Sprintf("# Panel %d\nDescription: scene %d\nText: \"A: hi\"\n", i, i))
		}

		panels, err := ExtractPanels(sb.String())
		require.NoError(t, err)
		require.Len(t, panels, 6)
		assert.Equal(t, domain.PanelInfo{Description: "hero, city", Text: "Hero: Stop!"}, panels[0])
	})
}
