package config

import "go.uber.org/fx"

// Module provides *Config parsed from the process flags and environment.
var Module = fx.Provide(Load)
