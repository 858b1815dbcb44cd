package types

// URLColumn は、出力テーブルの先頭列の見出しです。
const URLColumn = "URL"

// NoDataFound は、ページ取得に失敗した行の各フィールドに入る値です。
const NoDataFound = "No data found"

// ResultRow は、1URL分の出力行です。
// これは、BatchScraperの出力、レポート出力の入力として利用されます。
type ResultRow struct {
	URL    string   // 処理対象のURL
	Values []string // フィールド値 (列順)
	Err    error    // 取得時のエラー。行の内容には含めない
}

// Cells は URL を先頭にした1行分のセルを返します。
func (r ResultRow) Cells() []string {
	cells := make([]string, 0, len(r.Values)+1)
	cells = append(cells, r.URL)
	return append(cells, r.Values...)
}

// OutputTable は、見出し行と結果行の集まりです。
type OutputTable struct {
	Header []string
	Rows   []ResultRow
}

// Records は見出し行を含む全行をセルの二次元配列として返します。
func (t OutputTable) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Header)
	for _, r := range t.Rows {
		records = append(records, r.Cells())
	}
	return records
}

// Failed は取得に失敗した行の数を返します。
func (t OutputTable) Failed() int {
	n := 0
	for _, r := range t.Rows {
		if r.Err != nil {
			n++
		}
	}
	return n
}
