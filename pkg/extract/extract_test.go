package extract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-stock-exact/pkg/extract"
)

// ======================================================================
// テスト用フィクスチャ
// ======================================================================

const fullPage = `<html><head><title>HDFC Bank</title></head><body>
<h1><span id="mainContent_ltrlCompName"> HDFC Bank Ltd. </span></h1>
<a class="nav-link font-weight-bold" href="/sector/banks">Banks</a>
<a class="font-weight-bold" href="/other">Other</a>
<span class="Number">₹1,650.35</span>
<table>
  <tr><td class="Number" value="1">1</td><td class="Number" value="2">2</td></tr>
  <tr><td class="Number" value="3">3</td><td class="Number" value="₹19.8">19.8</td></tr>
</table>
<div id="ratios">
  <div class="compess"><p><span class="Number">₹12,55,000</span> Cr.</p></div>
  <div class="compess"><p><span class="Number">₹13,00,000</span></p></div>
  <div class="compess"><p><span class="Number">760</span></p></div>
  <div class="compess"><p>unmapped</p></div>
  <div class="compess"><p> 2.7 </p></div>
  <div class="compess"><p>₹ 1</p></div>
  <div class="compess"><p>1.2 %</p></div>
  <div class="compess"><p><span class="Number">₹600.4</span></p></div>
  <div class="compess"><p>unmapped</p></div>
  <div class="compess"><p>unmapped</p></div>
  <div class="compess"><p>25.5 %</p></div>
  <div class="compess"><p><span class="Number">₹84.3</span></p></div>
  <div class="compess"><p><span class="Number">18.1</span></p></div>
</div>
<span id="mainContent_ltrlCash">₹ 2,10,000 Cr.</span>
<span id="mainContent_ltrlDebt">₹ 45,000</span>
</body></html>`

func newExtractor(t *testing.T) *extract.Extractor {
	t.Helper()
	e, err := extract.NewExtractor()
	require.NoError(t, err)
	return e
}

func repeat(v string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// ======================================================================
// テスト関数
// ======================================================================

func TestNewExtractor(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		e := newExtractor(t)
		assert.Len(t, e.Headers(), 16)
	})

	t.Run("error_with_empty_selector", func(t *testing.T) {
		e, err := extract.NewExtractor(extract.Field{Name: "X"})
		assert.Error(t, err)
		assert.Nil(t, e)
	})

	t.Run("error_with_duplicate_name", func(t *testing.T) {
		f := extract.Field{Name: "X", Selector: "p"}
		e, err := extract.NewExtractor(f, f)
		assert.Error(t, err)
		assert.Nil(t, e)
		assert.Contains(t, err.Error(), "重複")
	})
}

func TestHeaders(t *testing.T) {
	want := []string{
		"Company Name", "Sector", "LTP", "P/E Ratio", "Market Cap (Cr)", "Enterprise Value (Cr)",
		"No. of Shares (Cr)", "P/B Ratio", "Face Value", "Div. Yield", "Book Value (TTM)", "CASH", "DEBT",
		"Promoter Holding", "EPS (TTM)", "Sales Growth (%)",
	}
	assert.Equal(t, want, newExtractor(t).Headers())
}

func TestExtract(t *testing.T) {
	testCases := []struct {
		name     string
		html     string
		expected []string
	}{
		{
			name: "full_page",
			html: fullPage,
			expected: []string{
				"HDFC Bank Ltd.", "Banks", "1,650.35", "19.8",
				"12,55,000", "13,00,000", "760",
				"2.7", "1", "1.2 %", "600.4",
				"2,10,000 Cr.", "45,000",
				"25.5 %", "84.3", "18.1",
			},
		},
		{
			name:     "empty_document",
			html:     "",
			expected: repeat("N/A", 16),
		},
		{
			name:     "no_landmarks",
			html:     `<html><body><p>maintenance</p></body></html>`,
			expected: repeat("N/A", 16),
		},
		{
			name: "partial_page",
			html: `<html><body>
                <span id="mainContent_ltrlCompName">Acme</span>
                <table><tr><td class="Number" value="1"></td><td class="Number" value="2"></td><td class="Number" value="3"></td></tr></table>
                <span id="mainContent_ltrlDebt">₹ 12 Cr.</span>
               </body></html>`,
			expected: func() []string {
				v := repeat("N/A", 16)
				v[0] = "Acme"
				v[12] = "12 Cr."
				return v
			}(),
		},
		{
			name:     "pe_cell_without_value_attribute",
			html:     `<table><tr><td class="Number">1</td><td class="Number">2</td><td class="Number">3</td><td class="Number">4</td></tr></table>`,
			expected: repeat("N/A", 16),
		},
		{
			name: "empty_landmark_text",
			html: `<span id="mainContent_ltrlCompName"></span><a class="font-weight-bold">  </a>`,
			expected: func() []string {
				v := repeat("N/A", 16)
				v[1] = ""
				return v
			}(),
		},
		{
			name: "malformed_markup",
			html: `<p><span class="Number">₹9<div><span id="mainContent_ltrlCash">₹ 3 Cr.`,
			expected: func() []string {
				v := repeat("N/A", 16)
				v[2] = "9"
				v[11] = "3 Cr."
				return v
			}(),
		},
	}

	e := newExtractor(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := e.Extract(tc.html)
			assert.Equal(t, 16, rec.Len())
			assert.Equal(t, tc.expected, rec.Values())
		})
	}
}

func TestExtract_CompessPositions(t *testing.T) {
	// 4, 9, 10 番目の compess はどのフィールドにも使われない
	var b strings.Builder
	b.WriteString("<div>")
	for i := 1; i <= 13; i++ {
		b.WriteString(`<div class="compess"><p><span class="Number">`)
		b.WriteString(strings.Repeat("x", i))
		b.WriteString(`</span></p></div>`)
	}
	b.WriteString("</div>")

	rec := newExtractor(t).Extract(b.String())
	for _, v := range rec.Values() {
		assert.NotEqual(t, "xxxx", v)
		assert.NotEqual(t, "xxxxxxxxx", v)
		assert.NotEqual(t, "xxxxxxxxxx", v)
	}
	got, ok := rec.Get("Promoter Holding")
	require.True(t, ok)
	assert.Equal(t, strings.Repeat("x", 11), got)
}

func TestRecordGet(t *testing.T) {
	rec := newExtractor(t).Extract(fullPage)

	v, ok := rec.Get("Cash")
	assert.True(t, ok)
	assert.Equal(t, "2,10,000 Cr.", v)

	_, ok = rec.Get("Unknown")
	assert.False(t, ok)

	assert.Equal(t, newExtractor(t).Headers(), rec.Headers())
	assert.Equal(t, len(extract.DefaultFields), rec.Len())
}

func TestExtract_CustomFields(t *testing.T) {
	e, err := extract.NewExtractor(
		extract.Field{Name: "Title", Header: "Title", Strategy: extract.FirstMatch, Selector: "title"},
		extract.Field{Name: "Second", Header: "Second", Strategy: extract.IndexedAttr, Selector: "a", Index: 1, Attr: "href"},
	)
	require.NoError(t, err)

	rec := e.Extract(`<html><head><title>₹ Page</title></head><body><a href="/a">a</a><a href="/b">b</a></body></html>`)
	assert.Equal(t, []string{"Page", "/b"}, rec.Values())
	assert.Equal(t, []string{"Title", "Second"}, e.Headers())
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "by-id", extract.ByID.String())
	assert.Equal(t, "first-match", extract.FirstMatch.String())
	assert.Equal(t, "indexed-attr", extract.IndexedAttr.String())
	assert.Equal(t, "unknown", extract.Strategy(99).String())
}
