package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

// askScenario は、シナリオを対話的に入力してもらうのだ。
// 内容の検証はしない。空でもそのまま受け付けるのだ。
func askScenario() (string, error) {
	prompt := promptui.Prompt{
		Label: "短い漫画のシナリオを入力してほしいのだ",
	}

	scenario, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return "", fmt.Errorf("シナリオの入力がキャンセルされたのだ")
		}
		return "", err
	}
	return scenario, nil
}

// askArtStyle は、画風を自由入力してもらうのだ。
// 許可リストとの照合とフォールバックは後段の正規化に任せるのだ。
func askArtStyle() (string, error) {
	prompt := promptui.Prompt{
		Label:   fmt.Sprintf("画風を入力してほしいのだ (%s)", styleChoices()),
		Default: domain.DefaultArtStyle.String(),
	}

	style, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return "", fmt.Errorf("画風の入力がキャンセルされたのだ")
		}
		return "", err
	}
	return style, nil
}

func styleChoices() string {
	return strings.Join(domain.ArtStyleNames(), " / ")
}
