package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPromptByMode(t *testing.T) {
	t.Run("両モードのテンプレートが埋め込まれているのだ", func(t *testing.T) {
		for _, mode := range []string{ModePanels, ModeStory} {
			content, err := GetPromptByMode(mode)
			require.NoError(t, err, mode)
			assert.NotEmpty(t, content, mode)
		}
	})

	t.Run("未知のモードはサポート一覧つきでエラーになるのだ", func(t *testing.T) {
		_, err := GetPromptByMode("haiku")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "haiku")
		assert.Contains(t, err.Error(), ModePanels)
		assert.Contains(t, err.Error(), ModeStory)
	})
}

func TestBuild(t *testing.T) {
	data := TemplateData{
		Scenario: "A cat discovers a door to the moon.",
		ArtStyle: "Manga",
	}

	t.Run("パネル用プロンプトにシナリオと画風が埋め込まれるのだ", func(t *testing.T) {
		built, err := Build(ModePanels, data)
		require.NoError(t, err)

		assert.Contains(t, built, data.Scenario)
		assert.Contains(t, built, "**Art Style:** Manga")
		assert.Contains(t, built, "# Panel 1")
	})

	t.Run("ストーリー用プロンプトにも埋め込まれるのだ", func(t *testing.T) {
		built, err := Build(ModeStory, data)
		require.NoError(t, err)

		assert.Contains(t, built, data.Scenario)
		assert.Contains(t, built, "**Art Style Context:** Manga")
		assert.Contains(t, built, "# Moral")
	})

	t.Run("空のシナリオも検証せず受け付けるのだ", func(t *testing.T) {
		built, err := Build(ModePanels, TemplateData{Scenario: "", ArtStyle: "Anime"})
		require.NoError(t, err)
		assert.Contains(t, built, "Short Scenario:")
	})
}
