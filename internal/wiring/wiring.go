// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pynix/internal/adapters/cache"
	_ "go.trai.ch/pynix/internal/adapters/config"
	_ "go.trai.ch/pynix/internal/adapters/fs"
	_ "go.trai.ch/pynix/internal/adapters/index"
	_ "go.trai.ch/pynix/internal/adapters/lock"
	_ "go.trai.ch/pynix/internal/adapters/logger"
	_ "go.trai.ch/pynix/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/pynix/internal/app"
	_ "go.trai.ch/pynix/internal/engine/overlay"
)
