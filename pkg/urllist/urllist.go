// Package urllist は、改行区切りのURLリストの読み込みと書き出しを行います。
package urllist

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/shouni/go-utils/iohandler"
)

// DefaultFile は、URLリストの既定のファイル名です。
const DefaultFile = "urls.txt"

const maxLineSize = 1024 * 1024

// Parse は content を行ごとに分割して返します。
// 各行の前後の空白は取り除きますが、空行もそのまま残します (スキップは呼び出し側の責務)。
func Parse(content []byte) ([]string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("URLリストの読み取りエラー: %w", err)
	}
	return lines, nil
}

// Read は path (空の場合は標準入力) からURLリストを読み込みます。
func Read(path string) ([]string, error) {
	content, err := iohandler.ReadInput(path)
	if err != nil {
		return nil, fmt.Errorf("URLリストファイルの読み込みに失敗しました (%s): %w", path, err)
	}
	return Parse(content)
}

// Format は空でないURLを1行1件の形式に整形します。
func Format(urls []string) string {
	var b strings.Builder
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		b.WriteString(u)
		b.WriteByte('\n')
	}
	return b.String()
}

// Write は urls を path (空の場合は標準出力) に書き出します。
func Write(path string, urls []string) error {
	if err := iohandler.WriteOutputString(path, Format(urls)); err != nil {
		return fmt.Errorf("URLリストの書き込みに失敗しました (%s): %w", path, err)
	}
	return nil
}
