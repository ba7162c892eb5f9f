package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/shouni/go-comic-kit/internal/builder"
	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/pkg/domain"
)

// ExecutePanels は、シナリオから6コマの構成案を生成して表示するのだ。
func ExecutePanels(ctx context.Context, cfg *config.Config) error {
	appCtx, style, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	slog.Info("コマ割りの生成を開始するのだ", "model", cfg.PanelModel, "style", style)

	panels, err := appCtx.PanelRunner.Run(ctx, cfg.Options.Scenario, style)
	if err != nil {
		return fmt.Errorf("コマ割りパイプラインの実行に失敗したのだ: %w", err)
	}

	printPanels(panels)
	slog.Info("コマ割りの生成が完了したのだ！", "panels", len(panels))
	return nil
}

// ExecuteStory は、シナリオからストーリー構成を生成して表示するのだ。
func ExecuteStory(ctx context.Context, cfg *config.Config) error {
	appCtx, style, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	slog.Info("ストーリー構成の生成を開始するのだ", "model", cfg.StoryModel, "style", style)

	story, err := appCtx.StoryRunner.Run(ctx, cfg.Options.Scenario, style)
	if err != nil {
		return fmt.Errorf("ストーリーパイプラインの実行に失敗したのだ: %w", err)
	}

	printStory(story)
	slog.Info("ストーリー構成の生成が完了したのだ！", "sections", len(story))
	return nil
}

// ExecuteCraft は、同じシナリオからストーリー構成と6コマの両方を一気に生成するのだ。
// 2つの生成は互いに独立なので、errgroup で並列に実行するのだ。
func ExecuteCraft(ctx context.Context, cfg *config.Config) error {
	appCtx, style, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	slog.Info("フル生成を開始するのだ",
		"panel_model", cfg.PanelModel,
		"story_model", cfg.StoryModel,
		"style", style)

	var (
		panels []domain.PanelInfo
		story  domain.StoryInfo
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		panels, err = appCtx.PanelRunner.Run(egCtx, cfg.Options.Scenario, style)
		return err
	})
	eg.Go(func() error {
		var err error
		story, err = appCtx.StoryRunner.Run(egCtx, cfg.Options.Scenario, style)
		return err
	})
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("フル生成パイプラインの実行に失敗したのだ: %w", err)
	}

	printStory(story)
	printPanels(panels)
	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}

// setupAppContext は、提供された設定からアプリケーションコンテキストを初期化して返すのだ。
// あわせて Options の自由入力だった画風を正規化するのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, domain.ArtStyle, error) {
	style, ok := domain.NormalizeArtStyle(cfg.Options.Style)
	if !ok {
		slog.Warn("未知の画風が指定されたのでデフォルトに切り替えるのだ",
			"input", cfg.Options.Style,
			"fallback", style)
	}

	appCtx, err := builder.NewAppContext(ctx, cfg)
	if err != nil {
		return nil, style, err
	}
	return appCtx, style, nil
}
