// ABOUTME: Basic example showing the auto reader library with an in-memory store
// ABOUTME: Demonstrates enabling a domain and reacting to article events

package main

import (
	"context"
	"fmt"
	"log"

	"autoreader-api/autoreader-lib"
)

// consoleHost prints the commands a browser would execute
type consoleHost struct {
	active autoreader.Tab
}

func (h *consoleHost) ActiveTab(ctx context.Context) (autoreader.Tab, error) {
	return h.active, nil
}

func (h *consoleHost) ToggleReadingMode(ctx context.Context, tabID int) error {
	fmt.Printf("  -> toggle reading mode on tab %d\n", tabID)
	return nil
}

func (h *consoleHost) SetBadge(ctx context.Context, badge autoreader.Badge) error {
	fmt.Printf("  -> badge %q %q\n", badge.Text, badge.Color)
	return nil
}

func main() {
	ctx := context.Background()
	host := &consoleHost{}

	client, err := autoreader.NewClient(
		autoreader.WithHost(host),
		autoreader.WithQuietMode(),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	fmt.Println("=== Enable example.com ===")
	if _, err := client.PreferenceChanged(ctx, "example.com", true); err != nil {
		log.Fatal(err)
	}

	tab := autoreader.Tab{ID: 1, URL: "https://example.com/articles/42", IsArticle: true}

	fmt.Println("\n=== Article loads ===")
	decision, err := client.ArticleDetected(ctx, tab)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("decision:", decision)

	fmt.Println("\n=== User leaves reading mode, article loads again ===")
	decision, err = client.ArticleDetected(ctx, tab)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("decision:", decision)

	fmt.Println("\n=== Home page is never toggled ===")
	decision, err = client.ArticleDetected(ctx, autoreader.Tab{ID: 1, URL: "https://example.com/", IsArticle: true})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("decision:", decision)
}
