package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/texwatch/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/texwatch/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/texwatch/internal/adapters/scaffold"  //nolint:depguard // Wired in app layer
	"go.trai.ch/texwatch/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/texwatch/internal/core/ports"
	"go.trai.ch/texwatch/internal/engine/session"
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
			session.NodeID,
			scaffold.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	sess, err := graft.Dep[*session.Session](ctx)
	if err != nil {
		return nil, err
	}

	scaffolder, err := graft.Dep[ports.Scaffolder](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[*telemetry.OTelTracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, sess, scaffolder, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[*telemetry.OTelTracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
		Tracer: tracer,
	}, nil
}
