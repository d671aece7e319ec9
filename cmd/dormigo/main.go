package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"dormigo/internal/app"
	"dormigo/internal/client"
	"dormigo/internal/session"
)

func main() {
	godotenv.Load()

	apiURL := flag.String("api", envOr("DORMIGO_API_URL", "http://localhost:8080"), "backend base URL")
	sample := flag.Bool("sample", false, "seed the browse view with sample listings instead of loading from the backend")
	flag.Parse()

	store, err := session.NewStore()
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}

	api := client.New(*apiURL, store.Token)

	program := tea.NewProgram(app.New(api, store, *sample), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("dormigo exited with an error: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
