package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jobdeck/jobdeck/internal/client/chat"
	"github.com/jobdeck/jobdeck/internal/client/views"
)

// Chat opens the assistant sub-loop. Replies arrive behind the configured
// typing delay; the prompt waits for the pending reply before reading the
// next message. Type 'back' to leave.
func (a *App) Chat(ctx context.Context) {
	w := chat.NewWidget(a.cfg.ChatTypingDelay)
	defer w.Close()

	replies := make(chan chat.Message, 4)
	w.OnReply(func(m chat.Message) { replies <- m })

	views.RenderTranscript(w.Transcript())
	fmt.Fprintln(a.out, "Suggestions:", strings.Join(chat.QuickReplies(), " | "))
	fmt.Fprintln(a.out, "Type a message, or 'back' to leave.")

	for {
		line, err := GetSimpleText(a.reader, "", a.out)
		if err != nil {
			return
		}
		if strings.EqualFold(line, "back") || strings.EqualFold(line, "exit") {
			return
		}
		if !w.Send(line) {
			continue
		}
		select {
		case m := <-replies:
			views.RenderChatMessage(m)
		case <-ctx.Done():
			return
		}
	}
}
