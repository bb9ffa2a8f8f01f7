// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/buildit/internal/adapters/config"
	_ "go.trai.ch/buildit/internal/adapters/helper"
	_ "go.trai.ch/buildit/internal/adapters/logger"
	_ "go.trai.ch/buildit/internal/adapters/record"
	_ "go.trai.ch/buildit/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/buildit/internal/app"
	_ "go.trai.ch/buildit/internal/engine/dispatcher"
	_ "go.trai.ch/buildit/internal/engine/reconciler"
)
