/*
Evaluates a scene file with the engine: node hierarchies, cameras and
point batches. Pass the scene path as the first argument; it defaults to
the testbed scene.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/wankel/engine"
	"github.com/spaghettifunk/wankel/engine/core"
)

const defaultScene = "testbed/scene.toml"

func main() {
	path := defaultScene
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	e, err := engine.New(path)
	if err != nil {
		core.LogFatal("failed to boot engine: %s", err)
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal("failed to initialize engine: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		<-sigCh
		cancel()
	}()

	runErr := e.Run(ctx)
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		core.LogFatal("engine stopped: %s", runErr)
	}
}
