package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/makanrank/ranking-engine/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// MustGetEnvAsStrings splits a comma-separated variable, dropping empty entries.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	var values []string
	for _, v := range strings.Split(MustGetEnvAsString(ctx, name), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	return mustParseEnv(ctx, name, "integer", MustGetEnvAsString(ctx, name), strconv.Atoi)
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	return mustParseEnv(ctx, name, "boolean ('true'/'false')", MustGetEnvAsString(ctx, name), parseBoolean)
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	return mustParseEnv(ctx, name, "duration", MustGetEnvAsString(ctx, name), time.ParseDuration)
}

// GetEnvAsStringOr returns fallback when the variable is unset.
func GetEnvAsStringOr(name, fallback string) string {
	if s, exists := os.LookupEnv(name); exists {
		return s
	}
	return fallback
}

func GetEnvAsIntOr(ctx context.Context, name string, fallback int) int {
	s, exists := os.LookupEnv(name)
	if !exists {
		return fallback
	}
	return mustParseEnv(ctx, name, "integer", s, strconv.Atoi)
}

func GetEnvAsBooleanOr(ctx context.Context, name string, fallback bool) bool {
	s, exists := os.LookupEnv(name)
	if !exists {
		return fallback
	}
	return mustParseEnv(ctx, name, "boolean ('true'/'false')", s, parseBoolean)
}

func GetEnvAsDurationOr(ctx context.Context, name string, fallback time.Duration) time.Duration {
	s, exists := os.LookupEnv(name)
	if !exists {
		return fallback
	}
	return mustParseEnv(ctx, name, "duration", s, time.ParseDuration)
}

func mustParseEnv[T any](ctx context.Context, name, kind, s string, parse func(string) (T, error)) T {
	v, err := parse(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as "+kind,
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as %s [%s]: %s", kind, name, s))
	}
	return v
}

func parseBoolean(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %s", s)
	}
}
