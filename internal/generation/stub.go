package generation

import (
	"fmt"
	"strings"
)

// Keyless stub output. Deterministic per prompt so local pages render the
// same on every refresh.

var stubPool = []string{
	"(・∀・)ノ",
	"( ˘ ³˘)♥",
	"ᕙ(⇀‸↼‶)ᕗ",
	"(=ↀωↀ=)",
	"ヽ(°〇°)ﾉ",
	"( ͡° ͜ʖ ͡°)",
}

func stubItem(prompt string) string {
	sum := 0
	for _, r := range prompt {
		sum += int(r)
	}
	if sum < 0 {
		sum = -sum
	}
	return stubPool[sum%len(stubPool)]
}

func stubVariations(seed string) []string {
	out := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		out = append(out, stubItem(fmt.Sprintf("%s-%d", seed, i)))
	}
	return out
}

func stubDescription(value string) string {
	return fmt.Sprintf("The kaomoji %s carries a friendly, expressive mood and works well in casual chats.", value)
}

func stubSummary(label string) string {
	return fmt.Sprintf("The %s category gathers kaomoji that share one mood. Browse it to find a face matching the tone of your message, then copy it with one click.", label)
}

func stubArt(prompt string, lineWidth int) string {
	face := stubItem(prompt)
	pad := lineWidth - len([]rune(face))
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	right := pad - left
	line := strings.Repeat(" ", left) + face + strings.Repeat(" ", right)
	border := strings.Repeat("･", lineWidth)
	return border + "\n" + line + "\n" + border
}
