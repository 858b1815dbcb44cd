package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/shouni/go-utils/iohandler"
	"github.com/spf13/cobra"

	"github.com/shouni/go-stock-exact/internal/pipeline"
	"github.com/shouni/go-stock-exact/pkg/report"
)

var rawURL string

var extractCmd = &cobra.Command{
	Use:   "extract [URL]",
	Short: "1件の銘柄ページから指標を抽出し、表形式で表示します",
	Long:  `--url フラグ、引数、または標準入力で指定した銘柄ページを取得し、抽出した16項目を表形式で表示します。CSVは出力しません。`,
	Args:  cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		target := rawURL
		if target == "" && len(args) > 0 {
			target = args[0]
		}
		if target == "" {
			log.Println("URLが指定されていないため、標準入力からURLを読み込みます...")
			input, err := iohandler.ReadInputString("")
			if err != nil {
				return fmt.Errorf("標準入力の読み取りエラー: %w", err)
			}
			target = strings.TrimSpace(input)
		}

		processedURL, err := ensureScheme(target)
		if err != nil {
			return fmt.Errorf("URLスキームの処理エラー: %w", err)
		}

		client := GetGlobalFetcher()
		if client == nil {
			return fmt.Errorf("HTTPクライアントが初期化されていません。rootコマンドのPreRunを確認してください")
		}

		timeout := overallTimeout()
		log.Printf("処理対象URL: %s (全体タイムアウト: %s)", processedURL, timeout)

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		rec, err := pipeline.ExtractOne(ctx, client, processedURL)
		if err != nil {
			return fmt.Errorf("抽出エラー: %w", err)
		}

		report.RenderRecord(cmd.OutOrStdout(), processedURL, rec.Headers(), rec.Values())
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&rawURL, "url", "u", "", "抽出対象のURL")
}
