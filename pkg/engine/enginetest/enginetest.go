// Package enginetest provides an in-memory host engine for tests and the
// dev harness. It keeps a fixed client roster, permission and targeting
// tables, and records every notification, kick and team move so callers can
// assert on them.
package enginetest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedahan/Shine/pkg/engine"
)

// Client is a fake connected player.
type Client struct {
	id   int64
	name string
	team engine.TeamID
}

// NewClient creates a fake client with the given identity.
func NewClient(id int64, name string, team engine.TeamID) *Client {
	return &Client{id: id, name: name, team: team}
}

func (c *Client) ID() int64           { return c.id }
func (c *Client) Name() string        { return c.name }
func (c *Client) Team() engine.TeamID { return c.team }

// Notice is one recorded Notify call. To is nil for broadcasts.
type Notice struct {
	To   engine.Client
	Text string
}

// Kick is one recorded kick.
type Kick struct {
	Client engine.Client
	Reason string
}

// Engine is an in-memory engine.Engine. Permissions default to deny for
// players (grant with Allow/AllowAll) and allow for the server console;
// targeting defaults to allow unless the target is marked with Protect.
type Engine struct {
	Hooks *engine.HookBus

	clients  []*Client
	allowAll map[int64]bool
	allowed  map[int64]map[string]bool
	immune   map[int64]bool

	Notices []Notice
	Kicks   []Kick
}

// New creates a fake engine with the given roster.
func New(clients ...*Client) *Engine {
	return &Engine{
		Hooks:    engine.NewHookBus(),
		clients:  clients,
		allowAll: make(map[int64]bool),
		allowed:  make(map[int64]map[string]bool),
		immune:   make(map[int64]bool),
	}
}

// AddClient appends a client to the roster.
func (e *Engine) AddClient(c *Client) {
	e.clients = append(e.clients, c)
}

// AllowAll grants c every command.
func (e *Engine) AllowAll(c engine.Client) {
	e.allowAll[c.ID()] = true
}

// Allow grants c the named commands.
func (e *Engine) Allow(c engine.Client, commands ...string) {
	m := e.allowed[c.ID()]
	if m == nil {
		m = make(map[string]bool)
		e.allowed[c.ID()] = m
	}
	for _, cmd := range commands {
		m[cmd] = true
	}
}

// Protect marks c as untargetable by everyone except the server console.
func (e *Engine) Protect(c engine.Client) {
	e.immune[c.ID()] = true
}

// FindClient resolves a roster client by exact name (case-insensitive) or
// numeric id. Returns nil when nothing matches.
func (e *Engine) FindClient(token string) engine.Client {
	if id, err := strconv.ParseInt(token, 10, 64); err == nil {
		for _, c := range e.clients {
			if c.id == id {
				return c
			}
		}
	}
	for _, c := range e.clients {
		if strings.EqualFold(c.name, token) {
			return c
		}
	}
	return nil
}

// AllClients returns the current roster.
func (e *Engine) AllClients() []engine.Client {
	out := make([]engine.Client, len(e.clients))
	for i, c := range e.clients {
		out[i] = c
	}
	return out
}

// TeamClients returns the roster clients on the given team.
func (e *Engine) TeamClients(team engine.TeamID) []engine.Client {
	var out []engine.Client
	for _, c := range e.clients {
		if c.team == team {
			out = append(out, c)
		}
	}
	return out
}

// HasPermission reports whether c was granted the command. The server
// console (nil client) is always permitted.
func (e *Engine) HasPermission(c engine.Client, command string) bool {
	if c == nil {
		return true
	}
	if e.allowAll[c.ID()] {
		return true
	}
	return e.allowed[c.ID()][command]
}

// CanTarget allows everything except protected targets; the server console
// may target anyone.
func (e *Engine) CanTarget(invoker, target engine.Client) bool {
	if invoker == nil {
		return true
	}
	return !e.immune[target.ID()]
}

// Notify records the formatted message. Nil c records a broadcast.
func (e *Engine) Notify(c engine.Client, format string, args ...any) {
	e.Notices = append(e.Notices, Notice{To: c, Text: fmt.Sprintf(format, args...)})
}

// HookConsoleCommand subscribes fn on the hook bus.
func (e *Engine) HookConsoleCommand(name string, fn engine.ConsoleHandler) {
	e.Hooks.Hook(name, fn)
}

// Kick records the kick and drops c from the roster.
func (e *Engine) Kick(c engine.Client, reason string) {
	e.Kicks = append(e.Kicks, Kick{Client: c, Reason: reason})
	for i, rc := range e.clients {
		if rc.id == c.ID() {
			e.clients = append(e.clients[:i], e.clients[i+1:]...)
			break
		}
	}
}

// MoveToTeam reassigns c's team.
func (e *Engine) MoveToTeam(c engine.Client, team engine.TeamID) {
	for _, rc := range e.clients {
		if rc.id == c.ID() {
			rc.team = team
			return
		}
	}
}

// Console fires the named console command event, as the host would when the
// command is typed. A nil client is the server console.
func (e *Engine) Console(name string, c engine.Client, args ...string) {
	e.Hooks.Fire(name, c, args...)
}

// HookCount returns how many handlers are hooked to the named event.
func (e *Engine) HookCount(name string) int {
	return e.Hooks.HookCount(name)
}

// NoticesTo returns every message sent privately to c.
func (e *Engine) NoticesTo(c engine.Client) []string {
	var out []string
	for _, n := range e.Notices {
		if n.To != nil && c != nil && n.To.ID() == c.ID() {
			out = append(out, n.Text)
		}
	}
	return out
}

// Broadcasts returns every message sent to all players.
func (e *Engine) Broadcasts() []string {
	var out []string
	for _, n := range e.Notices {
		if n.To == nil {
			out = append(out, n.Text)
		}
	}
	return out
}

// ClearNotices discards recorded notifications.
func (e *Engine) ClearNotices() {
	e.Notices = nil
}
