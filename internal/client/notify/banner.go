// Package notify shows transient user messages. A message stays current
// until its TTL elapses or a newer message replaces it.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/recipeshare/internal/logging"
)

const DefaultTTL = 5 * time.Second

type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

var styles = map[Kind]lipgloss.Style{
	KindInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6")),
	KindSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a")).Bold(true),
	KindError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")).Bold(true),
}

type Message struct {
	Text  string
	Kind  Kind
	Shown time.Time
}

// Render returns the message styled for a terminal.
func (m Message) Render() string {
	st, ok := styles[m.Kind]
	if !ok {
		st = styles[KindInfo]
	}
	return st.Render(m.Text)
}

type Banner struct {
	mu      sync.Mutex
	ttl     time.Duration
	out     io.Writer
	log     logging.Logger
	current *Message
	timer   *time.Timer
	seq     uint64

	// OnDismiss, when set, runs after a message expires.
	OnDismiss func()
}

// NewBanner returns a banner writing shown messages to out (nil to only keep
// them in memory). A non-positive ttl selects DefaultTTL.
func NewBanner(out io.Writer, ttl time.Duration, log logging.Logger) *Banner {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &Banner{ttl: ttl, out: out, log: log}
}

// Show replaces the current message and restarts the dismiss timer.
func (b *Banner) Show(ctx context.Context, text string, kind Kind) {
	msg := Message{Text: text, Kind: kind, Shown: time.Now()}

	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.seq++
	seq := b.seq
	b.current = &msg
	b.timer = time.AfterFunc(b.ttl, func() { b.expire(seq) })
	out := b.out
	b.mu.Unlock()

	if kind == KindError {
		b.log.Warn(ctx, "user message", "kind", kind, "text", text)
	} else {
		b.log.Debug(ctx, "user message", "kind", kind, "text", text)
	}
	if out != nil {
		fmt.Fprintln(out, msg.Render())
	}
}

func (b *Banner) Info(ctx context.Context, text string)    { b.Show(ctx, text, KindInfo) }
func (b *Banner) Success(ctx context.Context, text string) { b.Show(ctx, text, KindSuccess) }
func (b *Banner) Error(ctx context.Context, text string)   { b.Show(ctx, text, KindError) }

func (b *Banner) expire(seq uint64) {
	b.mu.Lock()
	if seq != b.seq {
		// replaced while the timer was firing
		b.mu.Unlock()
		return
	}
	b.current = nil
	b.timer = nil
	cb := b.OnDismiss
	b.mu.Unlock()

	if cb != nil {
		cb()
	}
}

// Current returns the visible message, if any.
func (b *Banner) Current() (Message, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return Message{}, false
	}
	return *b.current, true
}

// Dismiss hides the current message now.
func (b *Banner) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.current = nil
}
