package identity

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// DefaultCatalog は、リクエストごとに切り替えるブラウザの User-Agent 一覧です。
var DefaultCatalog = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Firefox/89.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Safari/537.36 Edge/91.0.864.59",
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:88.0) Gecko/20100101 Firefox/88.0",
}

// Source は、User-Agent を1件ずつ供給する機能のインターフェースです。
type Source interface {
	Next() string
}

// Rotator は、固定カタログから一様ランダムに User-Agent を選びます。
// 呼び出し間で状態を持たないため、同じ値が連続することもあります。
type Rotator struct {
	catalog []string

	mu  sync.Mutex
	rnd *rand.Rand
}

// New は、カタログと乱数ソースを指定して Rotator を生成します。
// カタログはコピーされるため、呼び出し元が後から変更しても影響しません。
func New(catalog []string, src rand.Source) (*Rotator, error) {
	if len(catalog) == 0 {
		return nil, fmt.Errorf("identity.New: カタログが空です")
	}
	if src == nil {
		return nil, fmt.Errorf("identity.New: 乱数ソースが nil です")
	}
	c := make([]string, len(catalog))
	copy(c, catalog)

	return &Rotator{
		catalog: c,
		rnd:     rand.New(src),
	}, nil
}

// NewDefault は、DefaultCatalog と現在時刻シードの乱数で Rotator を生成します。
func NewDefault() *Rotator {
	r, _ := New(DefaultCatalog, rand.NewSource(time.Now().UnixNano()))
	return r
}

// Next は、カタログから1件をランダムに返します。
func (r *Rotator) Next() string {
	r.mu.Lock()
	i := r.rnd.Intn(len(r.catalog))
	r.mu.Unlock()
	return r.catalog[i]
}
