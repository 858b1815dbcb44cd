package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"golang.org/x/net/html/charset"

	"github.com/shouni/go-stock-exact/pkg/identity"
)

// ----------------------------------------------------------------------
// 定数とインターフェース
// ----------------------------------------------------------------------

const (
	// DefaultHTTPTimeout は、デフォルトのHTTPタイムアウトです。
	DefaultHTTPTimeout = httpkit.DefaultHTTPTimeout

	// AcceptLanguage は、すべてのリクエストに付与する Accept-Language ヘッダーの値です。
	AcceptLanguage = "en-US,en;q=0.5"
)

// Doer は、標準の *http.Client.Do()と互換性のあるHTTPクライアントのインターフェースを定義します。
type Doer = httpkit.Doer

// Result は1回の取得結果です。Err が nil なら Body にHTMLが入ります。
type Result struct {
	URL  string
	Body string
	Err  error
}

// OK は取得に成功したかどうかを返します。
func (r Result) OK() bool {
	return r.Err == nil
}

// PageFetcher は、ページを1回だけ取得する機能のインターフェースです。
type PageFetcher interface {
	Fetch(ctx context.Context, url string) Result
}

// Client は httpkit.Client をラップし、User-Agent の切り替えと文字コードの変換を行います。
// リトライは行わず、1URLにつき1回だけリクエストします。
type Client struct {
	kit      *httpkit.Client
	doer     *headerRecorder
	identity identity.Source
}

// ----------------------------------------------------------------------
// 設定とコンストラクタ
// ----------------------------------------------------------------------

// ClientOption はClientの設定を行うための関数型です。
type ClientOption func(*Client)

// WithHTTPClient はカスタムのDoerを設定します。
// 内部の httpkit.Client にカスタムDoerを設定します。
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *Client) {
		if doer != nil {
			c.doer.next = doer
		}
	}
}

// WithIdentity は User-Agent の供給元を差し替えます。
func WithIdentity(src identity.Source) ClientOption {
	return func(c *Client) {
		if src != nil {
			c.identity = src
		}
	}
}

// New は新しいClientを初期化します。
// timeout は内部の http.Client の Timeout に使用されます (0以下ならデフォルト)。
func New(timeout time.Duration, options ...ClientOption) *Client {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	c := &Client{
		doer:     &headerRecorder{next: &http.Client{Timeout: timeout}},
		identity: identity.NewDefault(),
	}

	for _, opt := range options {
		opt(c)
	}

	c.kit = httpkit.New(timeout,
		httpkit.WithMaxRetries(0),
		httpkit.WithHTTPClient(c.doer),
	)
	return c
}

// ----------------------------------------------------------------------
// 取得処理
// ----------------------------------------------------------------------

// Fetch は url に GET リクエストを1回送り、結果を返します。
// 失敗はエラーとして返さず Result.Err に格納し、ログに記録します。
func (c *Client) Fetch(ctx context.Context, url string) Result {
	body, contentType, err := c.get(ctx, url)
	if err != nil {
		if IsNonRetryableError(err) {
			log.Printf("Error fetching %s (client error): %v", url, err)
		} else {
			log.Printf("Error fetching %s: %v", url, err)
		}
		return Result{URL: url, Err: err}
	}
	return Result{URL: url, Body: string(decode(body, contentType))}
}

// FetchBytes は url に GET リクエストを1回送り、レスポンスボディを変換せずに返します。
// httpkit.Fetcher インターフェースを満たします。
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	body, _, err := c.get(ctx, url)
	return body, err
}

// get はリクエストを1回送り、ボディとレスポンスの Content-Type を返します。
func (c *Client) get(ctx context.Context, url string) ([]byte, string, error) {
	var contentType string
	ctx = context.WithValue(ctx, contentTypeKey{}, &contentType)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("HTTP GETリクエストの作成に失敗しました (URL: %s): %w", url, err)
	}
	req.Header.Set("User-Agent", c.identity.Next())
	req.Header.Set("Accept-Language", AcceptLanguage)

	body, err := c.kit.DoRequest(req)
	if err != nil {
		return nil, "", err
	}
	return body, contentType, nil
}

type contentTypeKey struct{}

// headerRecorder は httpkit に渡す Doer です。
// DoRequest はボディしか返さないため、Content-Type をリクエストのコンテキストに書き戻します。
type headerRecorder struct {
	next Doer
}

func (h *headerRecorder) Do(req *http.Request) (*http.Response, error) {
	resp, err := h.next.Do(req)
	if err != nil || resp == nil {
		return resp, err
	}
	if dst, ok := req.Context().Value(contentTypeKey{}).(*string); ok {
		*dst = resp.Header.Get("Content-Type")
	}
	return resp, nil
}

var utf8BOM = []byte("\xef\xbb\xbf")

// decode は BOM、Content-Type、<meta charset> の順に文字コードを判定し、ボディを UTF-8 に変換します。
// BOM と Content-Type で確定できず、ボディ全体が UTF-8 として正しければそのまま使います。
// 変換に失敗した場合は元のバイト列を返します。
func decode(body []byte, contentType string) []byte {
	enc, name, certain := charset.DetermineEncoding(body, contentType)
	if name == "utf-8" || (!certain && utf8.Valid(body)) {
		return bytes.TrimPrefix(body, utf8BOM)
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return body
	}
	return decoded
}

// IsNonRetryableError は与えられたエラーが 4xx 系のHTTPエラーであるかを判断します。
// httpkit の同名関数を呼び出します。
func IsNonRetryableError(err error) bool {
	return httpkit.IsNonRetryableError(err)
}
