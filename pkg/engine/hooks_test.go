package engine

import "testing"

func TestHookBusFire(t *testing.T) {
	bus := NewHookBus()

	var gotArgs []string
	var gotClient Client
	bus.Hook("sh_test", func(c Client, args ...string) {
		gotClient = c
		gotArgs = args
	})

	bus.Fire("sh_test", nil, "one", "two")

	if gotClient != nil {
		t.Errorf("expected nil client (server console), got %v", gotClient)
	}
	if len(gotArgs) != 2 || gotArgs[0] != "one" || gotArgs[1] != "two" {
		t.Errorf("expected args [one two], got %v", gotArgs)
	}
}

func TestHookBusMultipleHandlersInOrder(t *testing.T) {
	bus := NewHookBus()

	var order []int
	bus.Hook("ev", func(Client, ...string) { order = append(order, 1) })
	bus.Hook("ev", func(Client, ...string) { order = append(order, 2) })

	bus.Fire("ev", nil)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("expected handlers in subscription order [1 2], got %v", order)
	}
}

func TestHookBusUnknownEvent(t *testing.T) {
	bus := NewHookBus()
	// Firing an event nobody subscribed to must be a silent no-op.
	bus.Fire("nobody_home", nil, "arg")
}

func TestHookBusHookCount(t *testing.T) {
	bus := NewHookBus()

	if n := bus.HookCount("ev"); n != 0 {
		t.Errorf("expected 0 hooks before subscribing, got %d", n)
	}
	bus.Hook("ev", func(Client, ...string) {})
	bus.Hook("ev", func(Client, ...string) {})
	if n := bus.HookCount("ev"); n != 2 {
		t.Errorf("expected 2 hooks, got %d", n)
	}
	if n := bus.HookCount("other"); n != 0 {
		t.Errorf("expected 0 hooks for unrelated event, got %d", n)
	}
}

func TestTeamIDString(t *testing.T) {
	tests := []struct {
		team TeamID
		want string
	}{
		{TeamReadyRoom, "ready room"},
		{TeamMarines, "marines"},
		{TeamAliens, "aliens"},
		{TeamSpectate, "spectators"},
		{TeamID(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.team.String(); got != tt.want {
			t.Errorf("TeamID(%d).String() = %q, want %q", tt.team, got, tt.want)
		}
	}
}
