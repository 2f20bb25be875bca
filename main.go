package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.design/x/clipboard"

	"github.com/rennick7/arena/config"
	"github.com/rennick7/arena/demo"
	gamenet "github.com/rennick7/arena/net"
)

func main() {
	addr := flag.String("addr", "", "websocket feed address (ws://host:port/ws); empty runs the offline demo")
	name := flag.String("name", "player", "display name")
	demoMode := flag.Bool("demo", false, "force the offline demo even when -addr is set")
	cfgPath := flag.String("config", "arena.yaml", "tuning config file (optional, hot-reloaded)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	spec, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	var feed Feed
	status := "demo"
	if *addr != "" && !*demoMode {
		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatal(err)
		}
		defer logger.Sync()
		c, err := gamenet.Dial(context.Background(), *addr, logger)
		if err != nil {
			log.Fatal(err)
		}
		feed = c
		status = *addr
	} else {
		f, err := demo.New(*name)
		if err != nil {
			log.Fatal(err)
		}
		feed = f
	}
	defer feed.Close()

	watcher, err := config.NewWatcher(filepath.Dir(*cfgPath))
	if err != nil {
		log.Printf("config watch disabled: %v", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	clipboardReady := clipboard.Init() == nil

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("arena")

	game := NewGame(spec, *cfgPath, feed, watcher, status, clipboardReady)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
