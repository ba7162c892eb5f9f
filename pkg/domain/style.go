package domain

import (
	"strings"
	"unicode"
)

// ArtStyle はプロンプトに反映する画風の指定です。
// 画風はプロンプトの内容にだけ影響し、抽出ロジックには影響しません。
type ArtStyle string

const (
	StyleManga    ArtStyle = "Manga"
	StyleAnime    ArtStyle = "Anime"
	StyleAmerican ArtStyle = "American"
	StyleBelgian  ArtStyle = "Belgian"

	// DefaultArtStyle は不正な入力を受けたときのフォールバック先です。
	DefaultArtStyle = StyleAnime
)

// artStyles は許可リストなのだ。順番は選択プロンプトの表示順でもあるのだ。
var artStyles = []ArtStyle{StyleManga, StyleAnime, StyleAmerican, StyleBelgian}

// ArtStyles は選択可能な画風の一覧を返します。
func ArtStyles() []ArtStyle {
	styles := make([]ArtStyle, len(artStyles))
	copy(styles, artStyles)
	return styles
}

// ArtStyleNames は画風名を文字列スライスで返します。CLIの選択肢表示用です。
func ArtStyleNames() []string {
	styles := ArtStyles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = string(s)
	}
	return names
}

// String は ArtStyle を文字列として返します。
func (s ArtStyle) String() string {
	return string(s)
}

// NormalizeArtStyle は自由入力の画風を正規化します。
// 前後の空白を除き、先頭だけ大文字にした上で許可リストと照合します。
// 一致しない場合は DefaultArtStyle と false を返します。
func NormalizeArtStyle(input string) (ArtStyle, bool) {
	normalized := capitalize(strings.TrimSpace(input))
	for _, style := range artStyles {
		if normalized == string(style) {
			return style, true
		}
	}
	return DefaultArtStyle, false
}

// capitalize は先頭の1文字を大文字、残りを小文字にするのだ。
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
