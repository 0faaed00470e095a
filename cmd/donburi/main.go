package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"donburi-house/config"
	"donburi-house/internal/logger"
	"donburi-house/internal/notify"
)

func main() {
	demo := flag.Bool("demo", false, "run the scripted demo instead of the interactive menu")
	flag.Parse()

	cfg := config.Load()
	log := logger.New("donburi")

	if *demo {
		cfg.PushEnabled = true
		a := newApp(cfg, log, notify.ConsoleSink{Out: os.Stdout})
		if err := runDemo(a); err != nil {
			log.Error("demo failed", "error", err)
			os.Exit(1)
		}
		return
	}

	a := newApp(cfg, log, nil)
	if err := a.seed(); err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(newModel(a)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
