package router

import "go.uber.org/fx"

// Module provides the gin engine serving the account routes.
var Module = fx.Provide(Setup)
