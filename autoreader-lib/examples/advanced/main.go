// ABOUTME: Advanced example using a SQLite store and the LRU history policy
// ABOUTME: Demonstrates panel state, bulk preference edits and error classification

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"autoreader-api/autoreader-lib"
)

type panelHost struct {
	active autoreader.Tab
}

func (h *panelHost) ActiveTab(ctx context.Context) (autoreader.Tab, error) {
	return h.active, nil
}

func (h *panelHost) ToggleReadingMode(ctx context.Context, tabID int) error {
	fmt.Printf("  -> toggle reading mode on tab %d\n", tabID)
	return nil
}

func (h *panelHost) SetBadge(ctx context.Context, badge autoreader.Badge) error {
	fmt.Printf("  -> badge %q\n", badge.Text)
	return nil
}

func main() {
	ctx := context.Background()

	path := "autoreader_example.db"
	defer os.Remove(path)

	host := &panelHost{active: autoreader.Tab{ID: 9, URL: "https://news.example.org/world/today"}}

	client, err := autoreader.NewClient(
		autoreader.WithHost(host),
		autoreader.WithCacheOption(autoreader.CacheOption{
			Type:     autoreader.CacheTypeSQLite,
			FilePath: path,
		}),
		autoreader.WithHistory(200, 1, "lru"),
		autoreader.WithLogger(autoreader.DefaultLogger()),
	)
	if err != nil {
		if autoreader.IsStorageError(err) {
			log.Fatal("Store unavailable:", err)
		}
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	fmt.Println("=== Import a domain list ===")
	stored, err := client.ReplaceDomains(ctx, []string{"blog.example.com", "", "blog.example.com", "docs.example.net"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("stored:", stored)

	fmt.Println("\n=== Settings panel opens ===")
	state, err := client.DomainState(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("domain=%s enabled=%v\n", state.Domain, state.Enabled)

	fmt.Println("\n=== User enables the domain from the panel ===")
	decision, err := client.PreferenceChanged(ctx, state.Domain, true)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("decision:", decision)
	fmt.Println("remembered:", client.RecentURLs())

	fmt.Println("\n=== Validation errors ===")
	if _, err := client.PreferenceChanged(ctx, "", true); autoreader.IsValidationError(err) {
		fmt.Println("rejected:", err)
	}
}
