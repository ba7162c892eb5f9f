package prompt

import (
	_ "embed"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/template"
)

const (
	ModePanels = "panels"
	ModeStory  = "story"
)

//go:embed panels.md
var PanelsPrompt string

//go:embed story.md
var StoryPrompt string

// modeTemplates はモードとテンプレート文字列を紐づけるマップなのだ。
var modeTemplates = map[string]string{
	ModePanels: PanelsPrompt,
	ModeStory:  StoryPrompt,
}

// TemplateData はテンプレートに埋め込む値なのだ。
// シナリオの中身は検証しない。空文字でもそのまま受け付けるのだ。
type TemplateData struct {
	Scenario string
	ArtStyle string
}

// GetPromptByMode は、指定されたモードに対応するテンプレート文字列を返すのだ。
func GetPromptByMode(mode string) (string, error) {
	content, ok := modeTemplates[mode]
	if !ok {
		supported := slices.Collect(maps.Keys(modeTemplates))
		slices.Sort(supported)

		return "", fmt.Errorf("サポートされていないモード: '%s'。サポートされているモードは [%s] です",
			mode, strings.Join(supported, ", "))
	}

	if content == "" {
		return "", fmt.Errorf("モード '%s' に対応するプロンプトテンプレートが空なのだ。embed設定を確認してほしいのだ", mode)
	}

	return content, nil
}

// Build は指定モードのテンプレートにシナリオと画風を埋め込み、完成したプロンプトを返すのだ。
func Build(mode string, data TemplateData) (string, error) {
	content, err := GetPromptByMode(mode)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(mode).Parse(content)
	if err != nil {
		return "", fmt.Errorf("テンプレートの解析に失敗したのだ: %w", err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("テンプレートへの埋め込みに失敗したのだ: %w", err)
	}

	return sb.String(), nil
}
