// Package shine implements the admin command framework: command
// registration with chat aliases, typed argument parsing, permission-gated
// dispatch with targeting authorization, the chat command bridge, and the
// per-day command log.
package shine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedahan/Shine/pkg/engine"
)

// Handler is a command implementation. It receives the invoking client (nil
// for the server console) and one parsed value per declared parameter, in
// declaration order. Optional parameters that produced nothing arrive as
// nil.
type Handler func(actor engine.Client, args ...any)

// Command is one registered console command and its chat aliases.
type Command struct {
	ConsoleCmd   string
	ChatCmds     []string
	Handler      Handler
	Params       []Param
	NoPermission bool
	Silent       bool
	Help         string
}

// AddParam appends a parameter declaration. Call at registration time only;
// commands are read-only once dispatch starts.
func (c *Command) AddParam(p Param) {
	c.Params = append(c.Params, p)
}

// SetHelp sets the help text shown for this command.
func (c *Command) SetHelp(text string) {
	c.Help = text
}

// Registry owns the console-command and chat-alias tables. Registration
// happens at mod load on the host's main thread; dispatch only reads, so
// there is no locking anywhere in the command path.
type Registry struct {
	eng engine.Engine

	commands map[string]*Command // console command name -> command
	chat     map[string]*Command // chat alias (lowercased) -> command

	// hooked tracks which console names already have an engine hook.
	// The host cannot remove hooks, so each name is hooked at most once
	// for the process lifetime, however often it is re-registered.
	hooked map[string]bool

	// dispatch is attached by NewDispatcher; installed hooks route
	// through it.
	dispatch func(actor engine.Client, consoleCmd string, tokens ...string)
}

// NewRegistry creates an empty registry bound to the host engine.
func NewRegistry(eng engine.Engine) *Registry {
	return &Registry{
		eng:      eng,
		commands: make(map[string]*Command),
		chat:     make(map[string]*Command),
		hooked:   make(map[string]bool),
	}
}

// Register creates or overwrites the command keyed by consoleCmd and maps
// every chat alias to it. The engine hook for consoleCmd is installed the
// first time the name is seen; later registrations of the same name reuse
// it.
func (r *Registry) Register(consoleCmd string, chatCmds []string, handler Handler, noPermission, silent bool) (*Command, error) {
	if consoleCmd == "" {
		return nil, fmt.Errorf("register: empty console command name")
	}
	if handler == nil {
		return nil, fmt.Errorf("register %s: nil handler", consoleCmd)
	}
	for _, alias := range chatCmds {
		if alias == "" {
			return nil, fmt.Errorf("register %s: empty chat alias", consoleCmd)
		}
	}

	cmd := &Command{
		ConsoleCmd:   consoleCmd,
		ChatCmds:     chatCmds,
		Handler:      handler,
		NoPermission: noPermission,
		Silent:       silent,
	}
	r.commands[consoleCmd] = cmd
	for _, alias := range chatCmds {
		r.chat[strings.ToLower(alias)] = cmd
	}

	if !r.hooked[consoleCmd] {
		r.hooked[consoleCmd] = true
		name := consoleCmd
		r.eng.HookConsoleCommand(name, func(c engine.Client, args ...string) {
			if r.dispatch != nil {
				r.dispatch(c, name, args...)
			}
		})
	}
	return cmd, nil
}

// Remove deletes the console entry and the given chat aliases. The engine
// hook stays installed; dispatching a removed name is a silent no-op.
func (r *Registry) Remove(consoleCmd string, chatCmds ...string) {
	delete(r.commands, consoleCmd)
	for _, alias := range chatCmds {
		delete(r.chat, strings.ToLower(alias))
	}
}

// Lookup returns the command registered under a console name, or nil.
func (r *Registry) Lookup(consoleCmd string) *Command {
	return r.commands[consoleCmd]
}

// ChatLookup returns the command a chat alias points at, or nil.
func (r *Registry) ChatLookup(alias string) *Command {
	return r.chat[strings.ToLower(alias)]
}

// Commands returns every registered command, sorted by console name.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ConsoleCmd < out[j].ConsoleCmd
	})
	return out
}
