package router

import "go.uber.org/fx"

// Module provides the gin engine serving the API, the guarded pages and /metrics.
var Module = fx.Provide(Setup)
