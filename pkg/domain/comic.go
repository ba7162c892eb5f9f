package domain

// PanelInfo は AI モデルから抽出された漫画1コマ分の情報です。
type PanelInfo struct {
	// Description は背景とキャラクターの描写（カンマ区切り）です。
	Description string `json:"description"`
	// Text はそのコマの台詞です。台詞がない場合は "..." が入ります。
	Text string `json:"text"`
}

// PanelCount は1回の生成で期待されるコマ数です。
// テンプレートが「6コマに分割せよ」と指示しているため、抽出結果もこの数と一致する必要があります。
const PanelCount = 6

// StoryInfo はセクション名からセクション本文へのマップです。
// 認識されたセクションだけが格納され、欠けたセクションにデフォルト値は入りません。
type StoryInfo map[string]string

// ストーリーを構成するセクション名の定義です。
const (
	SectionTitle        = "title"
	SectionIntroduction = "introduction"
	SectionStoryline    = "storyline"
	SectionClimax       = "climax"
	SectionMoral        = "moral"
)

// storySectionOrder は出力時の正規の並び順なのだ。マップの反復順に頼らないのだ。
var storySectionOrder = []string{
	SectionTitle,
	SectionIntroduction,
	SectionStoryline,
	SectionClimax,
	SectionMoral,
}

// StorySections は認識されるセクション名を正規の順序で返します。
func StorySections() []string {
	sections := make([]string, len(storySectionOrder))
	copy(sections, storySectionOrder)
	return sections
}

// IsStorySection は名前が認識対象のセクションかどうかを判定します。
func IsStorySection(name string) bool {
	for _, s := range storySectionOrder {
		if s == name {
			return true
		}
	}
	return false
}
