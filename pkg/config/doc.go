// Package config loads the daemon's env-tagged configuration structs.
//
// LoadEnv reads .env files with godotenv. Called without paths it loads
// ./.env and leaves existing variables alone; explicit paths override them.
// Load then fills a struct with caarlos0/env and caches the result per type,
// so every package can ask for its own Config without re-parsing:
//
//	var sessCfg session.Config
//	if err := config.Load(&sessCfg); err != nil {
//	    return err
//	}
//	var redisCfg redis.Config
//	config.MustLoad(&redisCfg)
//
// A failed parse is not cached, so a later Load retries it. Tests use
// ResetCache or ForceReloadConfig after changing the environment.
//
// Errors are ErrParsingConfig (joined with the env error), ErrNilPointer and
// ErrConfigNotLoaded.
package config
