package main

import (
	"flag"
	"log"

	tea "charm.land/bubbletea/v2"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default: user config dir)")
	backend := flag.String("backend", "", "backend base URL (overrides config)")
	history := flag.String("history", "", "history file path (overrides config)")
	wire := flag.Bool("wire", false, "write a JSONL wire log under /tmp")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *backend != "" {
		cfg.BackendURL = *backend
	}
	if *history != "" {
		cfg.HistoryPath = *history
	}
	if *wire {
		cfg.WireLog = true
	}
	SetWireLogEnabled(cfg.WireLog)

	store := OpenStore(cfg.HistoryPath)
	client := NewClient(cfg.BackendURL)
	session := NewSession(client, store)

	p := tea.NewProgram(NewModel(session, store, client))
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
