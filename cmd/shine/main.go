package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jedahan/Shine/pkg/engine"
	"github.com/jedahan/Shine/pkg/engine/enginetest"
	"github.com/jedahan/Shine/pkg/shine"
)

// envDefault returns the environment variable value if set, otherwise the fallback.
func envDefault(envVar, fallback string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return fallback
}

// drainNotices prints and clears everything the fake engine delivered.
func drainNotices(eng *enginetest.Engine) {
	for _, n := range eng.Notices {
		if n.To == nil {
			fmt.Printf("  [broadcast] %s\n", n.Text)
		} else {
			fmt.Printf("  [to %s] %s\n", n.To.Name(), n.Text)
		}
	}
	eng.ClearNotices()
}

func main() {
	confPath := flag.String("conf", envDefault("SHINE_CONF", "shine.yaml"), "Path to config file, created when missing (env: SHINE_CONF)")
	logDir := flag.String("logdir", envDefault("SHINE_LOGDIR", ""), "Log directory, overrides config (env: SHINE_LOGDIR)")
	metricsAddr := flag.String("metrics", envDefault("SHINE_METRICS", ""), "Prometheus listen address, e.g. :9190; empty disables (env: SHINE_METRICS)")
	watch := flag.Bool("watch", os.Getenv("SHINE_WATCH") == "true", "Reload the config when the file changes on disk (env: SHINE_WATCH)")
	flag.Parse()

	log.Printf("Welcome to %s", shine.VersionString())

	conf, err := shine.LoadOrCreateConfig(*confPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	log.Printf("Loaded config from %s", *confPath)
	if *logDir != "" {
		conf.LogDir = *logDir
	}

	// Stand-in roster; a real host supplies its own engine.
	admin := enginetest.NewClient(1, "Omega", engine.TeamMarines)
	eng := enginetest.New(
		admin,
		enginetest.NewClient(2, "NsPlayer", engine.TeamMarines),
		enginetest.NewClient(3, "Skulk", engine.TeamAliens),
		enginetest.NewClient(4, "Lerk", engine.TeamAliens),
		enginetest.NewClient(5, "Watcher", engine.TeamSpectate),
	)
	eng.AllowAll(admin)

	reg := shine.NewRegistry(eng)
	logger := shine.NewLogger(conf)

	var m *shine.Metrics
	if *metricsAddr != "" {
		m = shine.NewMetrics(reg, time.Now())
	}

	disp := shine.NewDispatcher(reg, eng, logger, m)
	bridge := shine.NewChatBridge(reg, disp, conf, m)
	shine.RegisterBaseCommands(disp)
	log.Printf("Registered %d commands", len(reg.Commands()))

	if m != nil {
		mux := http.NewServeMux()
		mux.Handle("GET /metrics", m.Handler())
		go func() {
			log.Printf("Metrics listening on %s", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Printf("WARNING: metrics server: %v", err)
			}
		}()
	}

	// Config reloads arrive on the watcher goroutine; hand them to the
	// command loop so the bridge only ever changes between inputs.
	confCh := make(chan *shine.Config, 1)
	if *watch {
		if err := shine.WatchConfig(*confPath, func(c *shine.Config) { confCh <- c }); err != nil {
			log.Printf("WARNING: Could not watch config: %v", err)
		}
	}

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	fmt.Println("Shine admin console. Commands:")
	fmt.Println("  con <command> [args...]   run a console command as the server console")
	fmt.Println("  chat <player> <text...>   deliver a chat line from a player")
	fmt.Println("  clients                   list connected players")
	fmt.Println("  quit")
	fmt.Println()

	for {
		fmt.Print("shine> ")
		select {
		case c := <-confCh:
			bridge.SetConfig(c)
		case line, ok := <-lines:
			if !ok {
				return
			}
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			switch fields[0] {
			case "quit", "exit":
				return
			case "clients":
				for _, c := range eng.AllClients() {
					fmt.Printf("  %s[%d] - %s\n", c.Name(), c.ID(), c.Team())
				}
			case "con":
				if len(fields) < 2 {
					fmt.Println("usage: con <command> [args...]")
					continue
				}
				eng.Console(fields[1], nil, fields[2:]...)
				drainNotices(eng)
			case "chat":
				if len(fields) < 3 {
					fmt.Println("usage: chat <player> <text...>")
					continue
				}
				c := eng.FindClient(fields[1])
				if c == nil {
					fmt.Printf("no player named %q\n", fields[1])
					continue
				}
				out := bridge.HandleChat(c, strings.Join(fields[2:], " "))
				if out == "" {
					fmt.Println("(chat suppressed)")
				} else {
					fmt.Printf("%s: %s\n", c.Name(), out)
				}
				drainNotices(eng)
			default:
				fmt.Println("unknown input; one of: con, chat, clients, quit")
			}
		}
	}
}
