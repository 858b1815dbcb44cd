package progress

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// syncBuffer は描画ゴルーチンとテストの双方から触られるため排他します。
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestBar_Lifecycle(t *testing.T) {
	out := &syncBuffer{}
	bar := NewBar(out)

	bar.Start(3)
	bar.Advance("https://a", true)
	bar.Advance("https://b", false)
	bar.Advance("", true)
	bar.Finish()

	assert.Equal(t, int64(3), bar.value())
	assert.Contains(t, out.String(), DefaultMessage)
}

func TestBar_BeforeStart(t *testing.T) {
	bar := NewBar(&syncBuffer{})

	assert.NotPanics(t, func() {
		bar.Advance("https://a", true)
		bar.Finish()
	})
	assert.Equal(t, int64(0), bar.value())
}
