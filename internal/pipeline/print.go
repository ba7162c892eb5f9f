package pipeline

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

// printPanels は抽出済みのコマを番号つきで標準出力に並べるのだ。
func printPanels(panels []domain.PanelInfo) {
	magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()

	for i, panel := range panels {
		fmt.Println(magenta(fmt.Sprintf("Panel %d", i+1)))
		fmt.Printf("Description: %s\n", panel.Description)
		fmt.Printf("Text: %s\n\n", panel.Text)
	}
}

// printStory はストーリーのセクションを正規の順序で表示するのだ。
// 抽出できなかったセクションは黙って飛ばすのだ。
func printStory(story domain.StoryInfo) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	for _, section := range domain.StorySections() {
		content, ok := story[section]
		if !ok {
			continue
		}
		fmt.Println(cyan(section))
		fmt.Printf("%s\n\n", content)
	}
}
