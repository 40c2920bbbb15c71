// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/autodeps/internal/adapters/buildlog"
	_ "go.trai.ch/autodeps/internal/adapters/cas"
	_ "go.trai.ch/autodeps/internal/adapters/config"
	_ "go.trai.ch/autodeps/internal/adapters/fs"
	_ "go.trai.ch/autodeps/internal/adapters/logger"
	_ "go.trai.ch/autodeps/internal/adapters/manifest"
	// Register app and engine nodes.
	_ "go.trai.ch/autodeps/internal/app"
	_ "go.trai.ch/autodeps/internal/engine/inference"
)
