package extract

import (
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/shouni/go-stock-exact/pkg/normalize"
)

// Record は、1ページ分の抽出結果です。値はフィールド定義と同じ順序で並びます。
// ランドマークが見つからないフィールドも normalize.NotAvailable で必ず埋まります。
type Record struct {
	fields []Field
	values []string
}

// Values は、列順に並んだ値のコピーを返します。
func (r Record) Values() []string {
	v := make([]string, len(r.values))
	copy(v, r.values)
	return v
}

// Get は、フィールド名に対応する値を返します。
func (r Record) Get(name string) (string, bool) {
	for i, f := range r.fields {
		if f.Name == name {
			return r.values[i], true
		}
	}
	return "", false
}

// Headers は、値と同じ順序の列見出しを返します。
func (r Record) Headers() []string {
	h := make([]string, len(r.fields))
	for i, f := range r.fields {
		h[i] = f.Header
	}
	return h
}

// Len はフィールド数を返します。
func (r Record) Len() int {
	return len(r.values)
}

// Extractor は、フィールド定義に従ってHTMLからレコードを抽出します。
type Extractor struct {
	fields []Field
}

// NewExtractor は、新しいExtractorのインスタンスを生成します。
// fields を省略した場合は DefaultFields を使用します。
func NewExtractor(fields ...Field) (*Extractor, error) {
	if len(fields) == 0 {
		fields = DefaultFields
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" || f.Selector == "" {
			return nil, fmt.Errorf("extract.NewExtractor: フィールド名とセレクターは必須です: %+v", f)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("extract.NewExtractor: フィールド名が重複しています: %s", f.Name)
		}
		seen[f.Name] = true
	}

	fs := make([]Field, len(fields))
	copy(fs, fields)
	return &Extractor{fields: fs}, nil
}


// Headers は、フィールドの列見出しを列順に返します (URL 列は含みません)。
func (e *Extractor) Headers() []string {
	h := make([]string, len(e.fields))
	for i, f := range e.fields {
		h[i] = f.Header
	}
	return h
}

// Extract はHTML文字列を解析し、全フィールドを埋めたレコードを返します。
// 解析に失敗しても、すべて "N/A" のレコードを返します。
func (e *Extractor) Extract(html string) Record {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Printf("HTML解析に失敗しました。全フィールドを %s とします: %v", normalize.NotAvailable, err)
		return e.emptyRecord()
	}
	return e.ExtractDocument(doc)
}

// ExtractDocument は解析済みのドキュメントからレコードを抽出します。
func (e *Extractor) ExtractDocument(doc *goquery.Document) Record {
	values := make([]string, len(e.fields))
	for i, f := range e.fields {
		values[i] = normalize.Clean(resolve(doc, f), f.RetainUnitSuffix)
	}
	return Record{fields: e.fields, values: values}
}

func (e *Extractor) emptyRecord() Record {
	values := make([]string, len(e.fields))
	for i := range values {
		values[i] = normalize.NotAvailable
	}
	return Record{fields: e.fields, values: values}
}

// resolve は1フィールドのランドマークを探し、生テキストを返します。見つからなければ nil。
// 1フィールドの失敗がレコード全体に波及しないよう、panic もここで止める。
func resolve(doc *goquery.Document, f Field) (raw *string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("フィールド %q の解決中にエラーが発生しました: %v", f.Name, r)
			raw = nil
		}
	}()

	switch f.Strategy {
	case ByID, FirstMatch:
		s := doc.Find(f.Selector).First()
		if s.Length() == 0 {
			return nil
		}
		text := s.Text()
		return &text

	case IndexedAttr:
		s := doc.Find(f.Selector)
		if f.Index < 0 || s.Length() <= f.Index {
			return nil
		}
		v, ok := s.Eq(f.Index).Attr(f.Attr)
		if !ok {
			return nil
		}
		return &v
	}
	return nil
}
