package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/shouni/go-stock-exact/pkg/feed"
	"github.com/shouni/go-stock-exact/pkg/urllist"
)

var feedOpts struct {
	url    string
	output string
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "RSS/Atomフィードの記事リンクからURLリストを作成します",
	Long:  `指定されたフィードを取得し、記事リンクを1行1URLのリストとして出力します。出力は scrape コマンドの --input にそのまま渡せます。`,
	Args:  cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		feedURL, err := ensureScheme(feedOpts.url)
		if err != nil {
			return fmt.Errorf("URLスキームの処理エラー: %w", err)
		}

		client := GetGlobalFetcher()
		if client == nil {
			return fmt.Errorf("HTTPクライアントの取得に失敗しました")
		}

		timeout := overallTimeout()
		log.Printf("処理対象フィードURL: %s (全体タイムアウト: %s)", feedURL, timeout)

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		links, err := feed.NewParser(client).Links(ctx, feedURL)
		if err != nil {
			return fmt.Errorf("フィード解析エラー: %w", err)
		}
		log.Printf("フィードから %d 件のURLを取得しました。", len(links))

		return urllist.Write(feedOpts.output, links)
	},
}

func init() {
	feedCmd.Flags().StringVarP(&feedOpts.url, "url", "u", "", "解析対象のフィード (RSS/Atom) URL")
	feedCmd.Flags().StringVarP(&feedOpts.output, "output", "o", "", "URLリストの出力先 (省略時は標準出力)")

	_ = feedCmd.MarkFlagRequired("url")
}
