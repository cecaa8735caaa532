// Seed script for creating demo agents on every configured voice provider.
// Run with: go run ./scripts/seed.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Harshitk-cp/voicebridge/internal/config"
	"github.com/Harshitk-cp/voicebridge/providers"
	"github.com/Harshitk-cp/voicebridge/voice"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	entries := config.DefaultProviders()
	if path := config.ProvidersFile(); path != "" {
		var err error
		if entries, err = config.LoadProviders(path); err != nil {
			log.Fatalf("Failed to load providers: %v", err)
		}
	}
	if len(entries) == 0 {
		log.Fatal("No providers configured. Set RETELL_API_KEY, VAPI_API_KEY or PROVIDERS_FILE.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, e := range entries {
		p, err := providers.New(e.Vendor, providers.Config{APIKey: e.APIKey(), BaseURL: e.BaseURL})
		if err != nil {
			log.Fatalf("Provider %s: %v", e.ID, err)
		}
		seed(ctx, e.ID, p)
	}
}

func seed(ctx context.Context, id string, p *voice.Provider) {
	fmt.Printf("Seeding %s (%s)\n", id, p.ProviderID)

	agent, err := p.Agents.Create(ctx, voice.CreateAgentParams{
		Name:               voice.String("Demo Receptionist"),
		FirstMessage:       voice.String("Hello! How can I help you today?"),
		MaxDurationSeconds: voice.Int(600),
		Metadata:           map[string]any{"seeded": true},
	})
	if err != nil {
		log.Printf("  agent: %v", err)
		return
	}
	fmt.Printf("  Agent:  %s\n", agent.ID)

	if p.Supports(voice.CapabilityTools) {
		tool, err := p.Tools.Create(ctx, voice.CreateToolParams{
			Type:        "function",
			Name:        "lookup_order",
			Description: "Look up an order by its number",
		})
		if err != nil {
			log.Printf("  tool: %v", err)
		} else {
			fmt.Printf("  Tool:   %s\n", tool.ID)
		}
	}

	if p.Supports(voice.CapabilityKnowledgeBase) {
		kb, err := p.KnowledgeBase.Create(ctx, voice.CreateKnowledgeBaseParams{Name: "Demo FAQ"})
		if err != nil {
			log.Printf("  knowledge base: %v", err)
		} else {
			fmt.Printf("  KB:     %s\n", kb.ID)
		}
	}
}
