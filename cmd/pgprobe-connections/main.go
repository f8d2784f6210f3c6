package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cybertec-postgresql/pgprobes/internal/log"
	"github.com/cybertec-postgresql/pgprobes/internal/reaper"
)

// setupCloseHandler cancels the running query if the process is interrupted
func setupCloseHandler(ctx context.Context, cancel context.CancelFunc) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.GetLogger(ctx).Debug("SetupCloseHandler received an interrupt from OS. Closing session...")
		cancel()
	}()
}

var Exit = os.Exit

func main() {
	mainCtx, cancel := context.WithCancel(context.Background())
	setupCloseHandler(mainCtx, cancel)
	code := reaper.Main(mainCtx, reaper.ConnectionsProbe, os.Args[1:], os.Stdout)
	cancel()
	Exit(int(code))
}
