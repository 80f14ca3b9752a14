package observe

import "github.com/zoobzio/capitan"

// Field keys for reel signals.
var (
	KeyIndex     = capitan.NewIntKey("index")
	KeyLastIndex = capitan.NewIntKey("last_index")
	KeyCount     = capitan.NewIntKey("count")
	KeyDeck      = capitan.NewStringKey("deck")
	KeyPath      = capitan.NewStringKey("path")
	KeyError     = capitan.NewStringKey("error")
	KeyInterval  = capitan.NewDurationKey("interval")
)
