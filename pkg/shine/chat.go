package shine

import (
	"strings"

	"github.com/jedahan/Shine/pkg/engine"
)

// ChatBridge intercepts chat messages and turns directive-prefixed ones
// ("!kick bob", "/kick bob") into command invocations.
type ChatBridge struct {
	reg     *Registry
	disp    *Dispatcher
	conf    *Config
	metrics *Metrics
}

// NewChatBridge creates a bridge over the given registry and dispatcher.
// conf and metrics may be nil; a nil conf uses the defaults.
func NewChatBridge(reg *Registry, disp *Dispatcher, conf *Config, metrics *Metrics) *ChatBridge {
	if conf == nil {
		conf = DefaultConfig()
	}
	return &ChatBridge{reg: reg, disp: disp, conf: conf, metrics: metrics}
}

// SetConfig swaps the active config after a reload. Call from the host's
// main thread only.
func (b *ChatBridge) SetConfig(conf *Config) {
	if conf == nil {
		conf = DefaultConfig()
	}
	b.conf = conf
}

// HandleChat inspects one chat message from c and returns the text the host
// should deliver: the original message when it is not a command invocation
// (or the command is not silent), or "" when the echo must be suppressed.
// The command itself, if any, has already run by the time HandleChat
// returns.
func (b *ChatBridge) HandleChat(c engine.Client, text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return text
	}

	first := []rune(fields[0])
	directive := first[0]
	if !b.conf.IsDirective(directive) {
		return text
	}

	cmd := b.reg.ChatLookup(string(first[1:]))
	if cmd == nil {
		return text
	}

	b.metrics.chatRun()
	b.disp.RunCommand(c, cmd.ConsoleCmd, fields[1:]...)

	// "/" asks for a quiet invocation regardless of command flags.
	if cmd.Silent || b.conf.SilentChatCommands || directive == '/' {
		b.metrics.chatSuppress()
		return ""
	}
	return text
}
