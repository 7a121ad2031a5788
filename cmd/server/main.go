// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/whitecards/czar/internal/cards"
	"github.com/whitecards/czar/internal/database"
	"github.com/whitecards/czar/internal/deck"
	"github.com/whitecards/czar/internal/game"
	"github.com/whitecards/czar/internal/handlers"
	"github.com/whitecards/czar/internal/middleware"
	"github.com/whitecards/czar/internal/scores"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	source := &cards.FileSource{Path: getEnv("CARDS_FILE", "cards.json")}
	d, err := deck.New(source, deck.Options{
		BlankCards: getEnvBool("BLANK_CARDS", false),
		BlankRatio: getEnvFloat("BLANK_CARD_RATIO", 0.05),
	})
	if err != nil {
		log.Fatalf("failed to load deck: %v", err)
	}

	g := game.New(d, game.Config{
		HandLimit:  getEnvInt("HAND_LIMIT", 3),
		RoundDelay: time.Duration(getEnvInt("ROUND_DELAY_SEC", 10)) * time.Second,
	})
	g.Scores = pickScoreStore(logger)

	srv := handlers.NewGameServer(g, logger)

	mux := http.NewServeMux()
	mux.Handle("/ws", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.GameWSHandler(logger, srv),
	)))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	addr := ":5000"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("czar server running on %s", addr)

	cert, key := os.Getenv("TLS_CERT"), os.Getenv("TLS_KEY")
	if cert != "" && key != "" {
		err = http.ListenAndServeTLS(addr, cert, key, mux)
	} else {
		err = http.ListenAndServe(addr, mux)
	}
	if err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// pickScoreStore prefers Redis, falls back to Postgres, then to nothing.
func pickScoreStore(logger *logrus.Logger) scores.Store {
	if os.Getenv("REDIS_ADDR") != "" {
		store, err := scores.NewRedisStore()
		if err != nil {
			log.Fatalf("failed to connect score store: %v", err)
		}
		logger.Info("persisting scores to redis")
		return store
	}
	if os.Getenv("DATABASE_URL") != "" {
		if err := database.ConnectDB(context.Background()); err != nil {
			log.Fatalf("failed to connect score store: %v", err)
		}
		logger.Info("persisting scores to postgres")
		return database.ScoreStore{}
	}
	logger.Warn("no score store configured, scores will not survive restarts")
	return scores.Noop{}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}

func getEnvFloat(key string, def float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}
