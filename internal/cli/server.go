package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SWiseG/QuizLoop/internal/app"
	"github.com/SWiseG/QuizLoop/internal/config"
	"github.com/SWiseG/QuizLoop/internal/infra/memory"
	pgstore "github.com/SWiseG/QuizLoop/internal/infra/postgres"
	redisstore "github.com/SWiseG/QuizLoop/internal/infra/redis"
	transport "github.com/SWiseG/QuizLoop/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var (
		questionStore app.QuestionStore = memory.NewQuestionStore()
		roundStore    app.RoundStore    = memory.NewRoundStore()
		profileStore  app.ProfileStore  = memory.NewProfileStore()
	)
	if pool != nil {
		questionStore = pgstore.NewQuestionStore(pool)
		roundStore = pgstore.NewRoundStore(pool)
		profileStore = pgstore.NewProfileStore(pool)
	}

	leaderboardService := app.NewLeaderboardService(roundStore)

	var leaderboard app.LeaderboardSource = leaderboardService
	var cache *redisstore.LeaderboardCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cacheTTL := config.TTLDuration(cfg.Redis.CacheTTL, 30*time.Second)
		cache = redisstore.NewLeaderboardCache(client, leaderboardService, cacheTTL)
		leaderboard = cache
	}

	feed := app.NewFeed(leaderboardService)
	roundService := app.NewRoundService(roundStore, feed)
	if cache != nil {
		roundService.WithCache(cache)
	}

	questionService := app.NewQuestionService(questionStore)
	profileService := app.NewProfileService(profileStore)

	auth := transport.NewAuthenticator(cfg.Auth.Secret)
	handler := transport.NewHandler(questionService, roundService, leaderboard, profileService, auth)
	feedHandler := transport.NewFeedHandler(feed)

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.HandleFunc("/ws/leaderboard", feedHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quizloop backend on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
