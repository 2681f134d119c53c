package web

import (
	"github.com/google/wire"
)

// ProviderSet is the wire provider set for HTML pages
var ProviderSet = wire.NewSet(
	NewPages,
	NewHandler,
)
