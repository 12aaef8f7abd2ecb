package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// envConfig holds settings read from the environment. Flags win when given.
type envConfig struct {
	LogLevel    string        `env:"CHAOSROOM_LOG_LEVEL"`
	RedisAddr   string        `env:"CHAOSROOM_REDIS_ADDR"`
	FightLogTTL time.Duration `env:"CHAOSROOM_FIGHT_LOG_TTL" envDefault:"24h"`
}

// fightLogTTL is how long a player's fight log lives after their last fight
var fightLogTTL time.Duration

func parseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// applyEnv fills unset flags from the environment
func applyEnv(cmd *cobra.Command) error {
	var cfg envConfig
	if err := parseEnv(&cfg); err != nil {
		return err
	}

	if cfg.LogLevel != "" && !flagChanged(cmd, "log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.RedisAddr != "" && !flagChanged(cmd, "redis-addr") {
		redisAddr = cfg.RedisAddr
	}
	fightLogTTL = cfg.FightLogTTL
	return nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}
