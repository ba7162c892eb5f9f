package parser

import "regexp"

var (
	// PanelDelimiterRegex は "# Panel <数字>" 形式のコマ区切り行を特定します。
	// "# Panel" の部分は大文字小文字を区別し、番号の桁数は問いません。
	PanelDelimiterRegex = regexp.MustCompile(`# Panel \d+`)

	// DescriptionRegex は "Description: ..." 行の本文をキャプチャします（大文字小文字を区別しない）。
	DescriptionRegex = regexp.MustCompile(`(?i)Description:\s*(.+)`)

	// DialogueRegex は引用符で囲まれた "Text: \"...\"" の台詞をすべてキャプチャします。
	DialogueRegex = regexp.MustCompile(`(?is)Text:\s*"([^"]+)"`)

	// SectionHeadingRegex は "#" に続くセクション見出しトークンをキャプチャします。
	SectionHeadingRegex = regexp.MustCompile(`#\s*(\w+)`)
)
