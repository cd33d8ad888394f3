package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	sc "speller/internal/corrector"
	"speller/internal/customdict"
	"speller/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := sc.CorrectorConfig{
		CorpusPath:       getenv("CORPUS_PATH", "big.txt"),
		Alphabet:         os.Getenv("ALPHABET"),
		CountThreshold:   getEnvInt("COUNT_THRESHOLD", 1),
		TopKSuggestions:  getEnvInt("TOP_K_SUGGESTIONS", 8),
		CustomWordCount:  getEnvInt("CUSTOM_WORD_COUNT", 1_000_000_000),
		PreserveCase:     getEnvBool("PRESERVE_CASE", false),
		FilterShortWords: getEnvBool("FILTER_SHORT_WORDS", true),
	}

	redisAddr := getenv("REDIS_ADDR", "localhost:6379")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := getEnvInt("REDIS_DB", 0)

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	dict := customdict.New(client)

	corrector, err := sc.NewSpellCorrector(context.Background(), cfg, dict)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	srv := server.New(corrector)

	addr := getenv("HTTP_ADDR", ":8080")
	log.Printf("serving %d words on %s", corrector.KnownWords(), addr)
	log.Fatal(http.ListenAndServe(addr, srv.Handler()))
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return def
}
