package builder

import (
	"context"
	"fmt"

	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/internal/runner"
	"github.com/shouni/go-comic-kit/pkg/gemini"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する。
// これを各実行関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config      *config.Config         // Configは、環境変数から読み込まれたグローバルな設定です（APIキー、モデル名など）。
	Options     config.GenerateOptions // Optionsは、コマンドラインから渡された実行時の設定です（シナリオ、画風など）。
	PanelRunner runner.PanelRunner     // PanelRunnerは、6コマの構成案を生成するランナーです。
	StoryRunner runner.StoryRunner     // StoryRunnerは、ストーリー構成を生成するランナーです。
	aiClient    gemini.TextGenerator   // aiClient はGeminiの通信に使う共通クライアント
}

// NewAppContext は設定からクライアントとランナーを一度だけ組み立てるのだ。
// 資格情報が欠けている場合は、ネットワークに触れる前にここで失敗するのだ。
func NewAppContext(ctx context.Context, cfg *config.Config) (*AppContext, error) {
	aiClient, err := InitializeAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, err
	}

	return &AppContext{
		Config:      cfg,
		Options:     cfg.Options,
		aiClient:    aiClient,
		PanelRunner: runner.NewComicPanelRunner(*cfg, aiClient),
		StoryRunner: runner.NewComicStoryRunner(*cfg, aiClient),
	}, nil
}

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, apiKey string) (gemini.TextGenerator, error) {
	aiClient, err := gemini.NewClient(ctx, apiKey, config.DefaultRateInterval)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}
