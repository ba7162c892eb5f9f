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

// StoryRunner は、シナリオからストーリー構成を生成するためのインターフェースなのだ。
type StoryRunner interface {
	// Run はストーリー生成パイプラインを実行し、セクション名→本文のマップを返すのだ。
	Run(ctx context.Context, scenario string, style domain.ArtStyle) (domain.StoryInfo, error)
}

// ComicStoryRunner は、タイトル・導入・展開・クライマックス・教訓からなる
// ストーリー構成を生成する構造体なのだ。
type ComicStoryRunner struct {
	cfg      config.Config
	aiClient gemini.TextGenerator
}

// NewComicStoryRunner は、ComicStoryRunnerの新しいインスタンスを生成して返すのだ。
func NewComicStoryRunner(cfg config.Config, ai gemini.TextGenerator) *ComicStoryRunner {
	return &ComicStoryRunner{
		cfg:      cfg,
		aiClient: ai,
	}
}

// Run は、プロンプト構築、AIによる生成、セクション抽出を一気に行うのだ。
// コマ割りと違って件数の検証はない。欠けたセクションは欠けたまま返すのだ。
func (sr *ComicStoryRunner) Run(ctx context.Context, scenario string, style domain.ArtStyle) (domain.StoryInfo, error) {
	promptContent, err := prompt.Build(prompt.ModeStory, prompt.TemplateData{
		Scenario: scenario,
		ArtStyle: style.String(),
	})
	if err != nil {
		return nil, err
	}

	raw, err := sr.aiClient.GenerateText(ctx, sr.cfg.StoryModel, promptContent)
	if err != nil {
		return nil, fmt.Errorf("ストーリーの生成に失敗したのだ: %w", err)
	}

	return parser.ExtractStory(raw), nil
}
