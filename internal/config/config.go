package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	// DefaultPanelModel はコマ割り生成に使うモデル、DefaultStoryModel は
	// ストーリー構成の生成に使うモデルなのだ。モードごとに別のモデルを使うのだ。
	DefaultPanelModel   = "gemini-1.5-pro"
	DefaultStoryModel   = "gemini-2.5-pro"
	DefaultRateInterval = 10 * time.Second
)

// Config はアプリケーション全体の環境設定（APIキーやモデル名）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey string
	PanelModel   string
	StoryModel   string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		GeminiAPIKey: envutil.GetEnv("GEMINI_API_KEY", ""),
		PanelModel:   envutil.GetEnv("GEMINI_PANEL_MODEL", DefaultPanelModel),
		StoryModel:   envutil.GetEnv("GEMINI_STORY_MODEL", DefaultStoryModel),
	}
	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// 入力関連
	Scenario string // --scenario: 生成の題材となる短いシナリオ
	Style    string // --style: 画風（Manga / Anime / American / Belgian）

	// AI挙動設定
	PanelModel string // --panel-model: コマ割り生成用のGeminiモデル
	StoryModel string // --story-model: ストーリー生成用のGeminiモデル
}
