package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"

	"github.com/shouni/go-stock-exact/internal/pipeline"
	"github.com/shouni/go-stock-exact/pkg/report"
	"github.com/shouni/go-stock-exact/pkg/urllist"
)

var scrapeOpts struct {
	input      string
	output     string
	feedURL    string
	noProgress bool
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "URLリストの銘柄ページを順に取得し、指標をCSVに保存します",
	Long: `URLリストファイル (1行1URL) の各ページを入力順に取得し、16項目の指標を抽出してCSVに保存します。
取得に失敗したURLも "No data found" の行として出力されます。--feed を指定すると、フィードの記事リンクをURLリストとして使います。`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		client := GetGlobalFetcher()
		if client == nil {
			return fmt.Errorf("HTTPクライアントの取得に失敗しました")
		}

		cfg := pipeline.Config{
			InputPath:  scrapeOpts.input,
			OutputPath: scrapeOpts.output,
		}
		if scrapeOpts.feedURL != "" {
			feedURL, err := ensureScheme(scrapeOpts.feedURL)
			if err != nil {
				return fmt.Errorf("URLスキームの処理エラー: %w", err)
			}
			cfg.FeedURL = feedURL
		}
		if !scrapeOpts.noProgress {
			cfg.Progress = os.Stderr
		}

		// Ctrl+C で中断した場合も、未処理のURLを失敗行として書き出す
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		if clibase.Flags.Verbose {
			log.Printf("入力: %s / 出力: %s", cfg.InputPath, cfg.OutputPath)
		}

		if _, err := pipeline.Run(ctx, client, cfg); err != nil {
			return fmt.Errorf("スクレイピングパイプラインの実行エラー: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Scraping complete. Results saved in '%s'.\n", cfg.OutputPath)
		return nil
	},
}

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeOpts.input, "input", "i", urllist.DefaultFile, "URLリストファイル (1行1URL)")
	scrapeCmd.Flags().StringVarP(&scrapeOpts.output, "output", "o", report.DefaultFile, "結果を保存するCSVファイル")
	scrapeCmd.Flags().StringVarP(&scrapeOpts.feedURL, "feed", "f", "", "URLリストの代わりに使うフィード (RSS/Atom) URL")
	scrapeCmd.Flags().BoolVar(&scrapeOpts.noProgress, "no-progress", false, "進捗バーを表示しない")
}
