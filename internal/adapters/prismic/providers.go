package prismic

import (
	"github.com/google/wire"
	"github.com/philly/spacetraveling/internal/posts/ports"
)

// ProviderSet is the wire provider set for the Prismic adapter
var ProviderSet = wire.NewSet(
	NewPostRepository,
	wire.Bind(new(ports.PostRepository), new(*PostRepository)),
	wire.Bind(new(ports.PreviewResolver), new(*PostRepository)),
	wire.Bind(new(ports.HealthChecker), new(*PostRepository)),
)
