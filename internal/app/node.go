package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/purge/internal/adapters/cloudfront"   //nolint:depguard // Wired in app layer
	"go.trai.ch/purge/internal/adapters/codepipeline" //nolint:depguard // Wired in app layer
	"go.trai.ch/purge/internal/adapters/config"       //nolint:depguard // Wired in app layer
	"go.trai.ch/purge/internal/adapters/ledger"       //nolint:depguard // Wired in app layer
	"go.trai.ch/purge/internal/adapters/logger"       //nolint:depguard // Wired in app layer
	"go.trai.ch/purge/internal/adapters/metrics"      //nolint:depguard // Wired in app layer
	"go.trai.ch/purge/internal/adapters/telemetry"    //nolint:depguard // Wired in app layer
	"go.trai.ch/purge/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cloudfront.NodeID,
			codepipeline.NodeID,
			ledger.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	invalidator, err := graft.Dep[ports.Invalidator](ctx)
	if err != nil {
		return nil, err
	}

	pipeline, err := graft.Dep[*codepipeline.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	openLedger, err := graft.Dep[ledger.Factory](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	sink, err := graft.Dep[*metrics.PrometheusSink](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	reports := func(root string) ports.ReportStore {
		return openLedger(root)
	}

	return New(loader, invalidator, pipeline, reports, tracer, sink, sink, log), nil
}
