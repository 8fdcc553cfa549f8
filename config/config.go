package config

import (
	"os"
	"runtime"
	"strconv"
)

// Config runtime settings shared by the example drivers, command line
// arguments take precedence over these
type Config struct {
	CorpusDir string
	ResultDir string
	LogLevel  string
	Workers   int
}

func Load() Config {
	return Config{
		CorpusDir: getenv("COHA_CORPUS_DIR", "./coha"),
		ResultDir: getenv("COHA_RESULT_DIR", "./results"),
		LogLevel:  getenv("COHA_LOG_LEVEL", "info"),
		Workers:   getenvInt("COHA_WORKERS", runtime.NumCPU()),
	}
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
