package domain

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey は、生成を開始する前に資格情報が見つからなかったことを示します。
// ネットワークに触れる前の設定エラーとして扱います。
var ErrMissingAPIKey = errors.New("環境変数 GEMINI_API_KEY が設定されていません")

// ErrEmptyResponse は、生成サービスがレスポンスを返さなかった、
// またはテキストが空だったことを示します。リトライはしません。
var ErrEmptyResponse = errors.New("AIモデルから有効なテキスト応答が得られませんでした")

// PanelCountError は、抽出されたコマ数が期待値と一致しなかったことを示す検証エラーです。
// モデル出力のフォーマット崩れを検知するための厳格な構造契約です。
type PanelCountError struct {
	Expected int
	Actual   int
}

func (e *PanelCountError) Error() string {
	return fmt.Sprintf("期待したパネル数 %d に対して、実際に抽出できたのは %d 件でした。モデルの出力フォーマットを確認してください", e.Expected, e.Actual)
}
