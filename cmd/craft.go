package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/go-comic-kit/internal/pipeline"
)

// craftCmd は、ストーリー構成と6コマの両方を一度に生成するサブコマンドなのだ。
var craftCmd = &cobra.Command{
	Use:   "craft",
	Short: "ストーリー構成と6コマの構成案をまとめて生成するのだ！",
	Long: `同じシナリオからストーリー構成（story）と6コマの構成案（panels）の両方を
生成するのだ。2つの生成は独立しているので、並列に実行して時間を節約するのだよ。`,
	Example: "  ap-comic-go craft -s \"A lighthouse keeper and a lost whale.\" -a Belgian",
	RunE:    craftCommand,
}

// craftCommand は、craft サブコマンドの実行ロジック本体なのだ。
func craftCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadRuntimeConfig(cmd)
	if err != nil {
		return err
	}

	slog.Info("フル生成モードを起動するのだ！",
		"panel_model", cfg.PanelModel,
		"story_model", cfg.StoryModel,
		"style", cfg.Options.Style)

	if err := pipeline.ExecuteCraft(ctx, cfg); err != nil {
		return fmt.Errorf("フル生成中にエラーが発生したのだ: %w", err)
	}

	return nil
}
