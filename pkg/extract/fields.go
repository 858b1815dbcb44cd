package extract

import "fmt"

// Strategy は、ランドマークの解決方法を表します。
type Strategy int

const (
	// ByID は id 属性で要素を特定し、そのテキストを読みます。
	ByID Strategy = iota
	// FirstMatch はセレクターに一致する最初の要素のテキストを読みます。
	FirstMatch
	// IndexedAttr はセレクターに一致する要素群の Index 番目 (0始まり) から Attr 属性を読みます。
	IndexedAttr
)

// String は Strategy の名前を返します。
func (s Strategy) String() string {
	switch s {
	case ByID:
		return "by-id"
	case FirstMatch:
		return "first-match"
	case IndexedAttr:
		return "indexed-attr"
	default:
		return "unknown"
	}
}

// Field は、1フィールド分の抽出ルールです。
type Field struct {
	Name     string // レコード内のフィールド名
	Header   string // CSV の列見出し
	Strategy Strategy
	Selector string
	Index    int    // IndexedAttr のみ
	Attr     string // IndexedAttr のみ

	// RetainUnitSuffix が true の場合、元テキストの "Cr." を末尾に残します。
	RetainUnitSuffix bool
}

// compess ブロックは 1始まりの nth-child で参照する。4, 9, 10 番目はページ側に対応する指標がない。
const (
	compessNumber = "div.compess:nth-child(%d) > p > span.Number"
	compessText   = "div.compess:nth-child(%d) > p"
)

// DefaultFields は、出力列の順序どおりに並んだ抽出ルールの一覧です。
var DefaultFields = []Field{
	{Name: "Company Name", Header: "Company Name", Strategy: ByID, Selector: "span#mainContent_ltrlCompName"},
	{Name: "Sector", Header: "Sector", Strategy: FirstMatch, Selector: "a.font-weight-bold"},
	{Name: "LTP", Header: "LTP", Strategy: FirstMatch, Selector: "span.Number"},
	{Name: "P/E Ratio", Header: "P/E Ratio", Strategy: IndexedAttr, Selector: "td.Number", Index: 3, Attr: "value"},
	{Name: "Market Cap", Header: "Market Cap (Cr)", Strategy: FirstMatch, Selector: fmt.Sprintf(compessNumber, 1)},
	{Name: "Enterprise Value", Header: "Enterprise Value (Cr)", Strategy: FirstMatch, Selector: fmt.Sprintf(compessNumber, 2)},
	{Name: "No. of Shares", Header: "No. of Shares (Cr)", Strategy: FirstMatch, Selector: fmt.Sprintf(compessNumber, 3)},
	{Name: "P/B Ratio", Header: "P/B Ratio", Strategy: FirstMatch, Selector: fmt.Sprintf(compessText, 5)},
	{Name: "Face Value", Header: "Face Value", Strategy: FirstMatch, Selector: fmt.Sprintf(compessText, 6)},
	{Name: "Div. Yield", Header: "Div. Yield", Strategy: FirstMatch, Selector: fmt.Sprintf(compessText, 7)},
	{Name: "Book Value", Header: "Book Value (TTM)", Strategy: FirstMatch, Selector: fmt.Sprintf(compessNumber, 8)},
	{Name: "Cash", Header: "CASH", Strategy: ByID, Selector: "span#mainContent_ltrlCash", RetainUnitSuffix: true},
	{Name: "Debt", Header: "DEBT", Strategy: ByID, Selector: "span#mainContent_ltrlDebt", RetainUnitSuffix: true},
	{Name: "Promoter Holding", Header: "Promoter Holding", Strategy: FirstMatch, Selector: fmt.Sprintf(compessText, 11)},
	{Name: "EPS", Header: "EPS (TTM)", Strategy: FirstMatch, Selector: fmt.Sprintf(compessNumber, 12)},
	{Name: "Sales Growth", Header: "Sales Growth (%)", Strategy: FirstMatch, Selector: fmt.Sprintf(compessNumber, 13)},
}
