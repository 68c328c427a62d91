package chat

import (
	"strings"
	"sync"
	"time"
)

// Sender identifies who wrote a transcript line.
type Sender string

const (
	SenderBot  Sender = "bot"
	SenderUser Sender = "user"
)

// Message is one transcript line. The transcript is append-only and ordered.
type Message struct {
	Sender Sender
	Text   string
	At     time.Time
}

// Widget keeps the conversation transcript and simulates the bot "typing" by
// delaying each reply behind a cancellable timer. A closed widget never
// mutates its transcript again, even if a reply was pending.
type Widget struct {
	mu         sync.Mutex
	transcript []Message
	pending    []*time.Timer
	closed     bool

	delay time.Duration
	now   func() time.Time

	// onReply, when set, fires after each bot reply lands. Lets the UI
	// repaint without polling.
	onReply func(Message)
}

// DefaultTypingDelay mirrors the simulated latency before each bot reply.
const DefaultTypingDelay = 500 * time.Millisecond

func NewWidget(delay time.Duration) *Widget {
	w := &Widget{delay: delay, now: time.Now}
	w.transcript = []Message{{Sender: SenderBot, Text: Greeting, At: w.now()}}
	return w
}

// OnReply registers a callback invoked (from the timer goroutine) when a bot
// reply is appended.
func (w *Widget) OnReply(fn func(Message)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReply = fn
}

// Transcript returns a copy of the messages so far.
func (w *Widget) Transcript() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Message, len(w.transcript))
	copy(out, w.transcript)
	return out
}

// Send appends the user's message and schedules the bot reply after the
// typing delay. Blank input produces no message and reports false.
func (w *Widget) Send(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}

	w.transcript = append(w.transcript, Message{Sender: SenderUser, Text: text, At: w.now()})

	reply := Respond(text)
	var t *time.Timer
	t = time.AfterFunc(w.delay, func() {
		// Send still holds the lock when the timer is armed, so t is
		// assigned and registered by the time this acquires it.
		w.mu.Lock()
		w.prune(t)
		w.mu.Unlock()
		w.deliver(reply)
	})
	w.pending = append(w.pending, t)
	return true
}

func (w *Widget) deliver(reply string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	msg := Message{Sender: SenderBot, Text: reply, At: w.now()}
	w.transcript = append(w.transcript, msg)
	fn := w.onReply
	w.mu.Unlock()

	if fn != nil {
		fn(msg)
	}
}

// prune drops a fired timer so pending holds only live ones. Caller must
// hold w.mu.
func (w *Widget) prune(fired *time.Timer) {
	for i, t := range w.pending {
		if t == fired {
			w.pending = append(w.pending[:i], w.pending[i+1:]...)
			return
		}
	}
}

// Close cancels any pending replies. Subsequent Sends are no-ops.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	for _, t := range w.pending {
		t.Stop()
	}
	w.pending = nil
}
