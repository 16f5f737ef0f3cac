package notify

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBanner_ShowThenAutoDismiss(t *testing.T) {
	var out bytes.Buffer
	b := NewBanner(&out, 20*time.Millisecond, nil)

	var dismissed atomic.Int32
	b.OnDismiss = func() { dismissed.Add(1) }

	b.Success(context.Background(), "Recipe saved!")

	msg, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, "Recipe saved!", msg.Text)
	assert.Equal(t, KindSuccess, msg.Kind)
	assert.Contains(t, out.String(), "Recipe saved!")

	require.Eventually(t, func() bool {
		_, ok := b.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), dismissed.Load())
}

func TestBanner_NewerMessageReplacesOlder(t *testing.T) {
	b := NewBanner(nil, 200*time.Millisecond, nil)
	ctx := context.Background()

	b.Info(ctx, "first")
	time.Sleep(120 * time.Millisecond)
	b.Error(ctx, "second")

	// the first timer would have fired by now; the second message must survive it
	time.Sleep(130 * time.Millisecond)
	msg, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, "second", msg.Text)
	assert.Equal(t, KindError, msg.Kind)

	b.Dismiss()
	_, ok = b.Current()
	assert.False(t, ok)
}

func TestBanner_DefaultTTL(t *testing.T) {
	b := NewBanner(nil, 0, nil)
	assert.Equal(t, DefaultTTL, b.ttl)
}

func TestMessage_RenderKeepsText(t *testing.T) {
	for _, k := range []Kind{KindInfo, KindSuccess, KindError, Kind("other")} {
		assert.Contains(t, Message{Text: "hello", Kind: k}.Render(), "hello")
	}
}
