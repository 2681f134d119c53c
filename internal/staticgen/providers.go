package staticgen

import "github.com/google/wire"

// ProviderSet is the wire provider set for the static builder
var ProviderSet = wire.NewSet(NewBuilder)
