package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-r42/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
	flagIdle    time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host R42 over SSH",
	Long: `Serve R42 to SSH clients.

Every connection opens the start menu and plays its own game. Runs are
recorded under the SSH user name in the shared scoreboard (--db).

The host key is read from --host-key, or generated once at ~/.r42/host_key.

Examples:
  r42 serve
  r42 serve --ssh :2222 --idle-timeout 10m
  r42 serve --host-key ./host_key --db ./scores.db

Connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&flagSSHAddr, "ssh", ":23234", "listen address (host:port)")
	f.StringVar(&flagHostKey, "host-key", "", "host key file, generated when empty")
	f.DurationVar(&flagIdle, "idle-timeout", 30*time.Minute, "disconnect idle sessions after this long")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "r42-ssh")
	if err != nil {
		fail("%v", err)
	}
	game, err := gameOptions(logger)
	if err != nil {
		fail("%v", err)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdle,
		Game:        game,
	})
	if err != nil {
		fail("serve: %v", err)
	}

	fmt.Printf("R42 listening on %s (ctrl+c stops)\n", server.Addr())
	if err := server.ListenAndServe(); err != nil {
		fail("serve: %v", err)
	}
}
