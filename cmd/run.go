package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"poolbot/api"
	"poolbot/bot"
	"poolbot/config"
	"poolbot/database"
	"poolbot/events"
	"poolbot/repository"
	"poolbot/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting poolbot...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize the remote betting service client
	creds := api.NewStaticCredentials(cfg.APIToken)
	client := api.NewClientWithTimeout(cfg.APIBaseURL, creds, cfg.APITimeout)

	// Initialize services
	betService := service.NewBetService(client, eventBus)
	groupService := service.NewGroupService(client, client)

	// Initialize repositories
	guildLinks := repository.NewGuildLinkRepository(db)
	betMessages := repository.NewBetMessageRepository(db)

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:      cfg.DiscordToken,
		GuildID:    cfg.DiscordGuildID,
		QuickPicks: cfg.QuickPicks,
	}
	discordBot, err := bot.New(botConfig, betService, groupService, guildLinks, betMessages, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")

	// Close Discord bot connection
	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	// Give cleanup operations time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Close database connection
	log.Println("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}
