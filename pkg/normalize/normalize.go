package normalize

import (
	"strings"
)

const (
	// NotAvailable は、値が取得できなかったフィールドに入るプレースホルダーです。
	NotAvailable = "N/A"

	rupeeSymbol = "₹"
	unitCrore   = "Cr."
)

// Clean は抽出した生テキストを整形します。
// raw が nil または空文字の場合は NotAvailable を返します。
// 空白のみのテキストは欠損ではないため、整形後の空文字をそのまま返します。
// ₹ 記号をすべて除去し前後の空白を削除します。
// retainUnitSuffix が true で元のテキストに "Cr." が含まれていれば、末尾に " Cr." が一度だけ付くようにします。
func Clean(raw *string, retainUnitSuffix bool) string {
	if raw == nil || *raw == "" {
		return NotAvailable
	}
	original := *raw

	cleaned := strings.TrimSpace(strings.ReplaceAll(original, rupeeSymbol, ""))

	if retainUnitSuffix && strings.Contains(original, unitCrore) {
		if !strings.HasSuffix(cleaned, unitCrore) {
			cleaned += " " + unitCrore
		}
	}
	return cleaned
}
