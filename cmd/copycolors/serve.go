package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/copycolors/internal/platform/tui"
	"github.com/vovakirdan/copycolors/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the palette browser over SSH",
	Long: `Start an SSH server that shows saved palettes to connecting users.

Each SSH connection gets its own read-only browser. Clipboard copy is
disabled since the clipboard would be the server's.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.copycolors/host_key

Examples:
  copycolors serve                       # Listen on the configured address
  copycolors serve --ssh :2222           # Listen on port 2222
  copycolors serve --host-key ./host_key # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	sc := tui.SSHServerConfig{
		Address:      cfg.Serve.Address,
		HostKeyPath:  cfg.Serve.HostKey,
		IdleTimeout:  cfg.Serve.IdleTimeout,
		Layout:       cfg.Canvas.Layout(),
		HistoryLimit: cfg.History.Limit,
	}
	if flagSSHAddr != "" {
		sc.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sc.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		sc.IdleTimeout = flagIdleTimeout
	}

	store, err := storage.Open(cfg.History.DB)
	if err != nil {
		logger.Warn("could not open palette history", "error", err)
		store = nil // Continue with an empty browser
	}
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(sc, store, logger.WithPrefix("copycolors-ssh"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting palette server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
