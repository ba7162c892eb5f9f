package parser

import (
	"strings"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

// ExtractStory は生成されたテキストからストーリーの各セクションを抽出します。
//
// "#" に続く見出しトークンを区切りとして、見出しと次の見出しまでの本文を
// ペアで読み取ります。見出しは小文字に正規化し、認識対象
// (title / introduction / storyline / climax / moral) のものだけを格納します。
// 未知の見出しは黙って捨てられ、セクションが欠けていてもエラーにはなりません。
// 部分的なマップや空のマップも正当な戻り値です。
func ExtractStory(text string) domain.StoryInfo {
	story := domain.StoryInfo{}

	headings := SectionHeadingRegex.FindAllStringSubmatchIndex(text, -1)
	for i, loc := range headings {
		// loc[2]:loc[3] がキャプチャされた見出しトークン、loc[1] が見出し全体の終端なのだ
		name := strings.ToLower(text[loc[2]:loc[3]])

		end := len(text)
		if i+1 < len(headings) {
			end = headings[i+1][0]
		}
		content := strings.TrimSpace(text[loc[1]:end])

		if domain.IsStorySection(name) {
			story[name] = content
		}
	}

	return story
}
