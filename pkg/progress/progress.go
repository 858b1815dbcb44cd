// Package progress は、バッチ処理の進捗バーを端末に表示します。
package progress

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

const (
	// DefaultMessage は、進捗バーに表示する見出しです。
	DefaultMessage = "Scraping URLs"

	updateFrequency = 100 * time.Millisecond
	trackerLength   = 40
)

// Bar は go-pretty の progress.Writer を使った進捗表示です。
// scraper.Observer インターフェースを満たします。
type Bar struct {
	pw      progress.Writer
	tracker *progress.Tracker
	message string
	done    chan struct{}
}

// NewBar は、out に描画する進捗バーを生成します。
func NewBar(out io.Writer) *Bar {
	pw := progress.NewWriter()
	pw.SetOutputWriter(out)
	pw.SetAutoStop(true)
	pw.SetTrackerLength(trackerLength)
	pw.SetUpdateFrequency(updateFrequency)
	pw.SetStyle(progress.StyleDefault)
	pw.Style().Visibility.ETA = true
	pw.Style().Visibility.Value = true

	return &Bar{pw: pw, message: DefaultMessage}
}

// Start は total 件分のトラッカーを作成し、描画を開始します。
func (b *Bar) Start(total int) {
	b.tracker = &progress.Tracker{
		Message: b.message,
		Total:   int64(total),
		Units:   unitsURL,
	}
	b.pw.AppendTracker(b.tracker)

	b.done = make(chan struct{})
	go func() {
		defer close(b.done)
		b.pw.Render()
	}()
}

// Advance は1件分進めます。
func (b *Bar) Advance(url string, ok bool) {
	if b.tracker == nil {
		return
	}
	b.tracker.Increment(1)
}

// Finish はトラッカーを完了状態にし、最終状態の描画が終わるまで待ちます。
// 全トラッカーが完了すると AutoStop により描画ループが終了します。
func (b *Bar) Finish() {
	if b.tracker == nil {
		return
	}
	b.tracker.MarkAsDone()
	<-b.done
}

// value は現在までに進んだ件数を返します。
func (b *Bar) value() int64 {
	if b.tracker == nil {
		return 0
	}
	return b.tracker.Value()
}

var unitsURL = progress.Units{
	Notation:         " url",
	NotationPosition: progress.UnitsNotationPositionAfter,
	Formatter:        progress.FormatNumber,
}
