package main

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/namedeck/internal/config"
	"github.com/jask/namedeck/internal/store"
	"github.com/jask/namedeck/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	st := store.New()
	if name := strings.TrimSpace(cfg.App.InitialName); name != "" {
		st.SetName(name)
	}

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(tui.New(cfg, st), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
