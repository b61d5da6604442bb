// Package config provides runtime configuration for the 2048 terminal game.
//
// The config package handles:
//   - Default settings for an interactive game
//   - Binding command-line flags to a Config
//   - Validation of the resulting Config
//
// Settings:
//
//   - Seed: seeds tile spawning. Zero picks a fresh seed on every run, any
//     other value makes a game reproducible.
//   - Debug: enables debug-level logging on stderr.
//
// Usage:
//
//	cfg, err := config.FromCommand(cmd)
//	if err != nil {
//		log.Fatal(err)
//	}
//	rng := engine.NewRandomSource(cfg.Seed)
//
// The game reads no files and no environment variables; everything comes from
// flags, and the defaults reproduce the plain interactive game.
package config
