package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"roomwizard/bot"
	"roomwizard/config"
	"roomwizard/database"
	"roomwizard/repository"
	"roomwizard/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting roomwizard bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize repositories
	roomRepo := repository.NewRoomRepository(db)
	guildSettingsRepo := repository.NewGuildSettingsRepository(db)
	errorLogRepo := repository.NewErrorLogRepository(db)

	// The session is created up front because the pin and room services
	// talk to Discord through it
	session, err := bot.NewSession(cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	client := bot.NewSessionClient(session)

	// Initialize services
	log.Println("Initializing services...")
	services := bot.Services{
		Pins:   service.NewPinService(client),
		Rooms:  service.NewRoomService(roomRepo, client),
		Prefix: service.NewPrefixService(guildSettingsRepo, cfg.DefaultPrefix),
		Audit:  service.NewAuditLogger(errorLogRepo),
	}
	log.Println("Services initialized successfully")

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	discordBot, err := bot.New(session, services)
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
