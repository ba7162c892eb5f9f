package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/go-comic-kit/internal/pipeline"
)

// panelsCmd は、シナリオを6コマの構成案に変換するサブコマンドなのだ。
var panelsCmd = &cobra.Command{
	Use:   "panels",
	Short: "シナリオから6コマの構成案を生成するのだ。",
	Long: `短いシナリオをAIに渡して、ちょうど6コマ分の「背景・キャラクター描写」と
「台詞」を構造化して出力するのだ。コマ数が6に満たない・超える応答は検証エラーになるのだよ。`,
	Example: "  ap-comic-go panels -s \"A cat discovers a door to the moon.\" -a Manga",
	RunE:    panelsCommand,
}

// panelsCommand は、panels サブコマンドの実行ロジック本体なのだ。
func panelsCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 設定のロード（必要ならここで対話プロンプトが走るのだ）
	cfg, err := loadRuntimeConfig(cmd)
	if err != nil {
		return err
	}

	slog.Info("コマ割り生成モードを起動するのだ！",
		"panel_model", cfg.PanelModel,
		"style", cfg.Options.Style)

	// 2. パイプライン実行
	if err := pipeline.ExecutePanels(ctx, cfg); err != nil {
		return fmt.Errorf("コマ割り生成中にエラーが発生したのだ: %w", err)
	}

	return nil
}
