package runner

import (
	"context"
	"fmt"

	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/internal/prompt"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/gemini"
	"github.com/shouni/go-comic-kit/pkg/parser"
)

// PanelRunner は、シナリオから6コマの構造化データを生成するためのインターフェースなのだ。
type PanelRunner interface {
	// Run はコマ割り生成パイプラインを実行し、6件の PanelInfo を返すのだ。
	Run(ctx context.Context, scenario string, style domain.ArtStyle) ([]domain.PanelInfo, error)
}

// ComicPanelRunner は、シナリオから漫画のコマ割りを生成する核となる構造体なのだ。
type ComicPanelRunner struct {
	cfg      config.Config        // 実行時のコマンドライン引数や設定
	aiClient gemini.TextGenerator // Gemini APIと通信するクライアント
}

// NewComicPanelRunner は、ComicPanelRunnerの新しいインスタンスを生成して返すのだ。
func NewComicPanelRunner(cfg config.Config, ai gemini.TextGenerator) *ComicPanelRunner {
	return &ComicPanelRunner{
		cfg:      cfg,
		aiClient: ai,
	}
}

// Run は、プロンプト構築、AIによる生成、結果のパースを一気に行うのだ。
func (pr *ComicPanelRunner) Run(ctx context.Context, scenario string, style domain.ArtStyle) ([]domain.PanelInfo, error) {
	// 1. シナリオと画風をテンプレートに埋め込んでプロンプトを作るのだ
	promptContent, err := prompt.Build(prompt.ModePanels, prompt.TemplateData{
		Scenario: scenario,
		ArtStyle: style.String(),
	})
	if err != nil {
		return nil, err
	}

	// 2. Geminiを使って、6コマの構成案（# Panel N 形式を期待）を生成させるのだ
	raw, err := pr.aiClient.GenerateText(ctx, pr.cfg.PanelModel, promptContent)
	if err != nil {
		return nil, fmt.Errorf("コマ割りの生成に失敗したのだ: %w", err)
	}

	// 3. AIが返したテキストを6件の構造化レコードに変換するのだ
	panels, err := parser.ExtractPanels(raw)
	if err != nil {
		return nil, fmt.Errorf("コマ割りの抽出に失敗したのだ: %w", err)
	}

	return panels, nil
}
