// Package pipeline は、URLリストの読み込みからCSV出力までの処理を組み立てます。
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/shouni/go-stock-exact/pkg/extract"
	"github.com/shouni/go-stock-exact/pkg/feed"
	"github.com/shouni/go-stock-exact/pkg/fetcher"
	"github.com/shouni/go-stock-exact/pkg/progress"
	"github.com/shouni/go-stock-exact/pkg/report"
	"github.com/shouni/go-stock-exact/pkg/scraper"
	"github.com/shouni/go-stock-exact/pkg/types"
	"github.com/shouni/go-stock-exact/pkg/urllist"
)

// Client はパイプラインが必要とする取得処理です。*fetcher.Client が満たします。
type Client interface {
	fetcher.PageFetcher
	feed.Fetcher
}

// Config はバッチ実行の入出力設定です。
type Config struct {
	InputPath  string    // URLリストファイル。FeedURL が指定された場合は使わない
	FeedURL    string    // 指定された場合、フィードの記事リンクをURLリストとして使う
	OutputPath string    // CSVの出力先
	Progress   io.Writer // nil の場合は進捗バーを表示しない
}

// Run はURLリストを読み込み、全URLをスクレイピングしてCSVに保存します。
// 個々のURLの失敗は行として記録され、エラーにはなりません。
func Run(ctx context.Context, client Client, cfg Config) (types.OutputTable, error) {
	urls, err := loadURLs(ctx, client, cfg)
	if err != nil {
		return types.OutputTable{}, err
	}

	extractor, err := extract.NewExtractor()
	if err != nil {
		return types.OutputTable{}, fmt.Errorf("Extractorの初期化エラー: %w", err)
	}

	var opts []scraper.Option
	if cfg.Progress != nil {
		opts = append(opts, scraper.WithObserver(progress.NewBar(cfg.Progress)))
	}

	s, err := scraper.NewBatchScraper(client, extractor, opts...)
	if err != nil {
		return types.OutputTable{}, fmt.Errorf("Scraperの初期化エラー: %w", err)
	}

	table := s.Run(ctx, urls)

	if err := report.Save(cfg.OutputPath, table); err != nil {
		return table, err
	}
	return table, nil
}

func loadURLs(ctx context.Context, client Client, cfg Config) ([]string, error) {
	if cfg.FeedURL != "" {
		log.Printf("フィードからURLリストを取得します: %s", cfg.FeedURL)
		urls, err := feed.NewParser(client).Links(ctx, cfg.FeedURL)
		if err != nil {
			return nil, fmt.Errorf("フィードからのURLリスト取得エラー: %w", err)
		}
		return urls, nil
	}
	return urllist.Read(cfg.InputPath)
}

// ExtractOne は1件のURLを取得し、抽出結果を返します。取得に失敗した場合はエラーです。
func ExtractOne(ctx context.Context, client fetcher.PageFetcher, url string) (extract.Record, error) {
	extractor, err := extract.NewExtractor()
	if err != nil {
		return extract.Record{}, fmt.Errorf("Extractorの初期化エラー: %w", err)
	}

	res := client.Fetch(ctx, url)
	if !res.OK() {
		return extract.Record{}, fmt.Errorf("ページの取得エラー (URL: %s): %w", url, res.Err)
	}
	return extractor.Extract(res.Body), nil
}
