// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/purge/internal/adapters/awsconfig"
	_ "go.trai.ch/purge/internal/adapters/cloudfront"
	_ "go.trai.ch/purge/internal/adapters/codepipeline"
	_ "go.trai.ch/purge/internal/adapters/config"
	_ "go.trai.ch/purge/internal/adapters/ledger"
	_ "go.trai.ch/purge/internal/adapters/logger"
	_ "go.trai.ch/purge/internal/adapters/metrics"
	_ "go.trai.ch/purge/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/purge/internal/app"
)
