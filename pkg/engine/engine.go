// Package engine defines the host game server surface the admin mod runs
// against. The real mod binds these interfaces to the engine's script hooks;
// tests and the dev harness use the in-memory fake in enginetest.
package engine

// TeamID identifies one of the game's teams.
type TeamID int

const (
	TeamReadyRoom TeamID = 0
	TeamMarines   TeamID = 1
	TeamAliens    TeamID = 2
	TeamSpectate  TeamID = 3
)

// String returns a human-readable team name.
func (t TeamID) String() string {
	switch t {
	case TeamReadyRoom:
		return "ready room"
	case TeamMarines:
		return "marines"
	case TeamAliens:
		return "aliens"
	case TeamSpectate:
		return "spectators"
	default:
		return "unknown"
	}
}

// Client is a connected player as the host engine sees it.
type Client interface {
	// ID is the stable numeric identity the engine assigns (the network
	// user id), used for audit logging and permission records.
	ID() int64
	Name() string
	Team() TeamID
}

// ConsoleHandler receives a fired console command. A nil client means the
// command came from the server console rather than a connected player.
type ConsoleHandler func(c Client, args ...string)

// Engine is everything the admin mod needs from the host game server.
// All calls are made on the host's main event thread.
type Engine interface {
	// FindClient resolves a single client from a name or numeric id token.
	// Returns nil when nothing matches.
	FindClient(token string) Client

	// AllClients returns every connected client.
	AllClients() []Client

	// TeamClients returns the connected clients on the given team.
	TeamClients(team TeamID) []Client

	// HasPermission reports whether c may run the named console command.
	// A nil client is the server console and is always permitted.
	HasPermission(c Client, command string) bool

	// CanTarget reports whether invoker may act on target. A nil invoker
	// is the server console and may target anyone.
	CanTarget(invoker, target Client) bool

	// Notify sends a private message to c. A nil client broadcasts to
	// every connected player.
	Notify(c Client, format string, args ...any)

	// HookConsoleCommand subscribes fn to the named console command event.
	// The host supports subscription only; hooks cannot be removed.
	HookConsoleCommand(name string, fn ConsoleHandler)

	// Kick disconnects c from the server with the given reason.
	Kick(c Client, reason string)

	// MoveToTeam places c on the given team.
	MoveToTeam(c Client, team TeamID)
}
