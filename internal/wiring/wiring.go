// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/imagetool/internal/adapters/cache"
	_ "go.trai.ch/imagetool/internal/adapters/config"
	_ "go.trai.ch/imagetool/internal/adapters/fs"
	_ "go.trai.ch/imagetool/internal/adapters/logger"
	_ "go.trai.ch/imagetool/internal/adapters/sections"
	_ "go.trai.ch/imagetool/internal/adapters/template"
	// Register app nodes.
	_ "go.trai.ch/imagetool/internal/app"
)
