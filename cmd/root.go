package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/pkg/domain"
)

// opts は各サブコマンドで共有される実行時オプションなのだ。
var opts config.GenerateOptions

var rootCmd = &cobra.Command{
	Use:               "ap-comic-go",
	Short:             "短いシナリオから漫画のコマ割りとストーリー構成をAIに生成させるのだ！",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: preRunAppE,
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- 生成の入力 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Scenario, "scenario", "s", "", "生成の題材となる短いシナリオなのだ（省略時は対話的に聞くのだ）。")
	rootCmd.PersistentFlags().StringVarP(&opts.Style, "style", "a", "", "画風（Manga / Anime / American / Belgian）なのだ。")

	// --- AIモデル設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.PanelModel, "panel-model", config.DefaultPanelModel, "コマ割り生成に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.StoryModel, "story-model", config.DefaultStoryModel, "ストーリー生成に使う Gemini モデル名なのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// .env があれば読み込むのだ。なくてもエラーにはしないのだ。
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env ファイルは見つからなかったのだ。環境変数をそのまま使うのだ")
	}

	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: %w。Gemini APIの利用には必須なのだ", domain.ErrMissingAPIKey)
	}

	return nil
}

// loadRuntimeConfig は環境変数の設定にコマンドラインの値を重ねるのだ。
// シナリオが未指定のときはここで対話プロンプトに切り替わるのだ。
func loadRuntimeConfig(cmd *cobra.Command) (*config.Config, error) {
	if opts.Scenario == "" {
		scenario, err := askScenario()
		if err != nil {
			return nil, err
		}
		opts.Scenario = scenario
	}
	if opts.Style == "" {
		style, err := askArtStyle()
		if err != nil {
			return nil, err
		}
		opts.Style = style
	}

	cfg := config.LoadConfig()
	cfg.Options = opts

	// フラグが明示されたときだけ、環境変数由来のモデル名を上書きするのだ
	if cmd.Flags().Changed("panel-model") {
		cfg.PanelModel = opts.PanelModel
	}
	if cmd.Flags().Changed("story-model") {
		cfg.StoryModel = opts.StoryModel
	}
	return cfg, nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
// パイプラインのどこで失敗しても、最後はここで1行のメッセージにまとめるのだ。
func Execute() {
	addAppFlags(rootCmd)
	rootCmd.AddCommand(panelsCmd, storyCmd, craftCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "うまくいかなかったのだ: %v\n", err)
		os.Exit(1)
	}
}
