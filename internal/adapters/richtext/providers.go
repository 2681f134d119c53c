package richtext

import "github.com/google/wire"

// ProviderSet is the wire provider set for the rich-text renderer
var ProviderSet = wire.NewSet(NewRenderer)
