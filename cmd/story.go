package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/go-comic-kit/internal/pipeline"
)

// storyCmd は、シナリオからストーリー構成を生成するサブコマンドなのだ。
var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "シナリオからタイトルつきのストーリー構成を生成するのだ。",
	Long: `短いシナリオをAIに渡して、タイトル・導入・展開・クライマックス・教訓の
5セクションからなる構成案を出力するのだ。認識できたセクションだけが表示されるのだよ。`,
	Example: "  ap-comic-go story -s \"A knight who is afraid of horses.\"",
	RunE:    storyCommand,
}

// storyCommand は、story サブコマンドの実行ロジック本体なのだ。
func storyCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadRuntimeConfig(cmd)
	if err != nil {
		return err
	}

	slog.Info("ストーリー生成モードを起動するのだ！",
		"story_model", cfg.StoryModel,
		"style", cfg.Options.Style)

	if err := pipeline.ExecuteStory(ctx, cfg); err != nil {
		return fmt.Errorf("ストーリー生成中にエラーが発生したのだ: %w", err)
	}

	return nil
}
