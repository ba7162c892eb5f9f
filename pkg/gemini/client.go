// Package gemini は Gemini API との通信を1箇所に隠蔽するクライアントパッケージです。
// 呼び出し側は TextGenerator インターフェースだけに依存するため、
// テストではネットワークに触れないフェイク実装に差し替えられます。
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

const (
	defaultCacheTTL     = 30 * time.Minute
	defaultCacheCleanup = 1 * time.Hour
	geminiUserRole      = "user"
)

// TextGenerator は、プロンプトからテキストを1回生成するための抽象です。
type TextGenerator interface {
	// GenerateText は指定モデルにプロンプトを投げ、前後の空白を除いた応答テキストを返す。
	GenerateText(ctx context.Context, model string, prompt string) (string, error)
}

// Client は google.golang.org/genai をラップした TextGenerator の実装です。
// レートリミッターとプロンプト単位のキャッシュを内蔵しています。
type Client struct {
	genaiClient *genai.Client
	limiter     *rate.Limiter
	respCache   *cache.Cache
}

// NewClient は APIキーから Gemini クライアントを初期化するのだ。
// キーが空のときはネットワークに触れる前に設定エラーを返すのだ。
func NewClient(ctx context.Context, apiKey string, interval time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("Geminiクライアントの初期化に失敗しました: %w", err)
	}

	return &Client{
		genaiClient: genaiClient,
		// Burst 2 により、panels と story の同時実行でも先頭の2リクエストは待たされないのだ
		limiter:   rate.NewLimiter(rate.Every(interval), 2),
		respCache: cache.New(defaultCacheTTL, defaultCacheCleanup),
	}, nil
}

// GenerateText は1回のブロッキング呼び出しでテキストを生成します。
// リトライはせず、応答が空のときは domain.ErrEmptyResponse を返します。
func (c *Client) GenerateText(ctx context.Context, model string, prompt string) (string, error) {
	key := cacheKey(model, prompt)
	if cached, ok := c.respCache.Get(key); ok {
		slog.Debug("キャッシュ済みの応答を再利用するのだ", "model", model)
		return cached.(string), nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	contents := []*genai.Content{
		{
			Role:  geminiUserRole,
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	result, err := c.genaiClient.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("テキスト生成のリクエストに失敗しました: %w", err)
	}

	text, err := extractText(result)
	if err != nil {
		return "", err
	}

	c.respCache.Set(key, text, cache.DefaultExpiration)
	return text, nil
}

// extractText は genai のレスポンスから本文テキストを取り出すのだ。
func extractText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 {
		return "", domain.ErrEmptyResponse
	}

	candidate := result.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", domain.ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		sb.WriteString(part.Text)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", domain.ErrEmptyResponse
	}
	return text, nil
}

// cacheKey はモデル名とプロンプトからキャッシュキーを組み立てるのだ。
// プロンプト本文に現れない区切り文字で連結して衝突を避けるのだ。
func cacheKey(model, prompt string) string {
	return model + "\x00" + prompt
}
