package cmd

import (
	"log"
	"time"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"

	"github.com/shouni/go-stock-exact/pkg/fetcher"
)

const (
	appName           = "stock-exact"
	defaultTimeoutSec = 10 // 秒

	// 単一URL・フィード処理の全体タイムアウトは、クライアントタイムアウトのこの倍数
	overallTimeoutFactor = 2
	// --timeout に 0 以下が指定された場合の全体タイムアウト
	DefaultOverallTimeout = 20 * time.Second
)

// AppFlags はこのアプリケーション固有の永続フラグを保持
type AppFlags struct {
	TimeoutSec int // --timeout タイムアウト
}

var Flags AppFlags
var globalFetcher *fetcher.Client

// addAppPersistentFlags は、アプリケーション固有の永続フラグをルートコマンドに追加します。
func addAppPersistentFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().IntVar(
		&Flags.TimeoutSec,
		"timeout",
		defaultTimeoutSec,
		"HTTPリクエストのタイムアウト時間（秒）",
	)
}

// clientTimeout は --timeout から HTTP クライアントのタイムアウトを求めます。
func clientTimeout() time.Duration {
	if Flags.TimeoutSec <= 0 {
		return fetcher.DefaultHTTPTimeout
	}
	return time.Duration(Flags.TimeoutSec) * time.Second
}

// overallTimeout は1件分の処理全体に許す時間です。
func overallTimeout() time.Duration {
	if Flags.TimeoutSec <= 0 {
		return DefaultOverallTimeout
	}
	return clientTimeout() * overallTimeoutFactor
}

// initAppPreRunE は、clibase共通処理の後に実行される、アプリケーション固有のPersistentPreRunEです。
// NOTE: clibase.Flags.Verbose はこの関数実行前に設定済み
func initAppPreRunE(cmd *cobra.Command, args []string) error {
	timeout := clientTimeout()

	if clibase.Flags.Verbose {
		log.Printf("HTTPクライアントのタイムアウトを設定しました (Timeout: %s)。", timeout)
	}

	globalFetcher = fetcher.New(timeout)
	return nil
}

// GetGlobalFetcher は、初期化されたフェッチャーを返す関数 (DIの代わり)
func GetGlobalFetcher() *fetcher.Client {
	return globalFetcher
}

// Execute は、clibase を使ってルートコマンドを組み立てて実行します。
func Execute() {
	clibase.Execute(
		appName,
		addAppPersistentFlags,
		initAppPreRunE,
		scrapeCmd,
		extractCmd,
		feedCmd,
	)
}
