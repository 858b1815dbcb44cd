package scraper

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/shouni/go-stock-exact/pkg/extract"
	"github.com/shouni/go-stock-exact/pkg/fetcher"
	"github.com/shouni/go-stock-exact/pkg/types"
)

// Observer は、バッチ処理の進捗を受け取ります。出力内容には影響しません。
type Observer interface {
	Start(total int)
	Advance(url string, ok bool)
	Finish()
}

// Scraper はURLリストを処理し、出力テーブルを生成する機能のインターフェースです。
type Scraper interface {
	Run(ctx context.Context, urls []string) types.OutputTable
}

// RecordExtractor は、HTMLからレコードを抽出する機能のインターフェースです。
// *extract.Extractor がこれを満たします。
type RecordExtractor interface {
	Extract(html string) extract.Record
	Headers() []string
}

// BatchScraper は URL を1件ずつ順番に処理します。
type BatchScraper struct {
	fetcher   fetcher.PageFetcher
	extractor RecordExtractor
	observer  Observer
}

// Option は BatchScraper の設定を行うための関数型です。
type Option func(*BatchScraper)

// WithObserver は進捗の通知先を設定します。
func WithObserver(o Observer) Option {
	return func(s *BatchScraper) {
		s.observer = o
	}
}

// NewBatchScraper は BatchScraper を初期化します。
// 依存性として Fetcher と Extractor を受け取ります。
func NewBatchScraper(f fetcher.PageFetcher, e RecordExtractor, opts ...Option) (*BatchScraper, error) {
	if f == nil {
		return nil, fmt.Errorf("scraper.NewBatchScraper: Fetcher cannot be nil")
	}
	if e == nil {
		return nil, fmt.Errorf("scraper.NewBatchScraper: Extractor cannot be nil")
	}
	s := &BatchScraper{
		fetcher:   f,
		extractor: e,
		observer:  nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.observer == nil {
		s.observer = nopObserver{}
	}
	return s, nil
}

// Header は出力テーブルの見出し行を返します。
func (s *BatchScraper) Header() []string {
	return append([]string{types.URLColumn}, s.extractor.Headers()...)
}

// Run は urls を入力順に処理し、出力テーブルを返します。
// 空行はスキップし、取得に失敗したURLには "No data found" で埋めた行を出力します。
// コンテキストがキャンセルされた場合、残りのURLは取得せずに失敗行として出力します。
func (s *BatchScraper) Run(ctx context.Context, urls []string) types.OutputTable {
	table := types.OutputTable{Header: s.Header()}

	s.observer.Start(len(urls))
	defer s.observer.Finish()

	for _, raw := range urls {
		url := strings.TrimSpace(raw)
		if url == "" {
			s.observer.Advance(url, true)
			continue
		}

		var row types.ResultRow
		if err := ctx.Err(); err != nil {
			row = s.failedRow(url, fmt.Errorf("処理が中断されました: %w", err))
		} else {
			row = s.scrape(ctx, url)
		}

		table.Rows = append(table.Rows, row)
		s.observer.Advance(url, row.Err == nil)
	}

	log.Printf("スクレイピング完了: %d 件 (失敗 %d 件)", len(table.Rows), table.Failed())
	return table
}

// scrape は1URLを取得・抽出して行を組み立てます。
func (s *BatchScraper) scrape(ctx context.Context, url string) types.ResultRow {
	res := s.fetcher.Fetch(ctx, url)
	if !res.OK() {
		return s.failedRow(url, res.Err)
	}

	record := s.extractor.Extract(res.Body)
	return types.ResultRow{
		URL:    url,
		Values: record.Values(),
	}
}

func (s *BatchScraper) failedRow(url string, err error) types.ResultRow {
	values := make([]string, len(s.extractor.Headers()))
	for i := range values {
		values[i] = types.NoDataFound
	}
	return types.ResultRow{URL: url, Values: values, Err: err}
}

type nopObserver struct{}

func (nopObserver) Start(int)            {}
func (nopObserver) Advance(string, bool) {}
func (nopObserver) Finish()              {}
