// Command contentcheck loads and validates a content file without touching
// the database, so broken card or biomarker definitions fail a build instead
// of a running session.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pendraco002/homeostasis-cards/internal/config"
	"github.com/pendraco002/homeostasis-cards/internal/version"
)

func main() {
	settings, err := config.ParseSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "contentcheck: %v\n", err)
		os.Exit(1)
	}

	path := flag.String("content", settings.ContentFile, "content file to validate")
	flag.Parse()

	content, err := config.LoadContent(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "contentcheck %s: %v\n", version.Version, err)
		os.Exit(1)
	}

	fmt.Printf("contentcheck %s: %s is valid (%d cards, %d events, %d difficulty tiers)\n",
		version.Version, *path, len(content.Cards), len(content.Events), len(content.Difficulty))
}
