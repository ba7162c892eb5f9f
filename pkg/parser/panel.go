package parser

import (
	"strings"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

const (
	// FallbackDescription は Description 行が見つからなかったコマに入る代替文です。
	FallbackDescription = "Unknown scene."
	// FallbackDialogue は台詞が1つも見つからなかったコマに入る代替文です。
	FallbackDialogue = "..."
)

// ExtractPanels は生成された自由形式テキストを6コマ分の構造化データに変換します。
// ネットワークから切り離された純粋関数なので、固定のフィクスチャ文字列で独立にテストできます。
//
// テキストは "# Panel <数字>" の区切りでブロックに分割され、各ブロックから
// Description と台詞を抽出します。抽出結果がちょうど6件でない場合は
// domain.PanelCountError を返します。
func ExtractPanels(text string) ([]domain.PanelInfo, error) {
	var panels []domain.PanelInfo

	blocks := PanelDelimiterRegex.Split(text, -1)
	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		panels = append(panels, extractPanel(block))
	}

	if len(panels) != domain.PanelCount {
		return nil, &domain.PanelCountError{
			Expected: domain.PanelCount,
			Actual:   len(panels),
		}
	}

	return panels, nil
}

// extractPanel は1ブロック分のテキストから Description と台詞を取り出すのだ。
func extractPanel(block string) domain.PanelInfo {
	panel := domain.PanelInfo{
		Description: FallbackDescription,
		Text:        FallbackDialogue,
	}

	if m := DescriptionRegex.FindStringSubmatch(block); m != nil {
		panel.Description = strings.TrimSpace(m[1])
	}

	// 台詞は複数行に分かれていることがあるため、見つかったものを順番に半角スペースで連結するのだ
	if matches := DialogueRegex.FindAllStringSubmatch(block, -1); matches != nil {
		lines := make([]string, 0, len(matches))
		for _, m := range matches {
			lines = append(lines, m[1])
		}
		panel.Text = strings.Join(lines, " ")
	}

	return panel
}
