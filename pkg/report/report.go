// Package report は、スクレイピング結果をCSVファイルや端末向けの表に出力します。
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shouni/go-utils/iohandler"
	textUtils "github.com/shouni/go-utils/text"

	"github.com/shouni/go-stock-exact/pkg/types"
)

// DefaultFile は、CSV出力の既定のファイル名です。
const DefaultFile = "scraped_results.csv"

// WriteCSV は見出し行と全行をCSVとして w に書き出します。改行コードは CRLF です。
func WriteCSV(w io.Writer, t types.OutputTable) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("CSVの書き込みに失敗しました: %w", err)
	}
	return nil
}

// EncodeCSV は出力テーブルをCSVのバイト列に変換します。
func EncodeCSV(t types.OutputTable) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save は出力テーブルをCSVとして path (空の場合は標準出力) に一括で書き出します。
func Save(path string, t types.OutputTable) error {
	content, err := EncodeCSV(t)
	if err != nil {
		return err
	}
	if err := iohandler.WriteOutput(path, content); err != nil {
		return fmt.Errorf("結果ファイルの書き込みに失敗しました (%s): %w", path, err)
	}
	return nil
}

// RenderRecord は1件分の抽出結果を「項目 | 値」の表として w に描画します。
func RenderRecord(w io.Writer, url string, headers, values []string) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(url)
	tw.AppendHeader(table.Row{"Field", "Value"})

	for i, h := range headers {
		v := ""
		if i < len(values) {
			v = textUtils.NormalizeText(values[i])
		}
		tw.AppendRow(table.Row{h, v})
	}
	tw.Render()
}
