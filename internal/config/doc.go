// Package config loads insightagent settings from layered sources.
//
// Sources are applied lowest priority first:
//
//	defaults (10) -> YAML file (20) -> INSIGHTAGENT_* env (30) -> flags (40)
//
// Environment variables map underscores to dots after the prefix, so
// INSIGHTAGENT_AGENT_APIKEY sets agent.apikey. Flags are mapped to keys
// through FlagKeys; only flags the user actually set override lower layers.
package config
