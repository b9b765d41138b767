package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

func getFloatEnv(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
			return f
		}
		log.Printf("Invalid float for %s, using fallback", key)
	}
	return fallback
}

// getListEnv splits a comma separated value, dropping empty entries.
func getListEnv(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
