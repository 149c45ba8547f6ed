// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

/*
Package supervisor wires Pavilion's long-running services into a suture
v4 supervision tree with Erlang/OTP-style restart semantics.

The tree has two layers:

	pavilion
	├── storage-layer
	│   └── db-checkpoint (file-backed databases only)
	└── api-layer
	    └── http-server

A crash in the checkpoint loop restarts that loop without interrupting
the HTTP server, and vice versa. Crashed services restart with
exponential backoff under the thresholds in TreeConfig, and supervisor
events (restarts, backoff, failures) flow through sutureslog into the
application's zerolog output via the logging package's slog adapter.

On shutdown, context cancellation propagates to every service, the HTTP
server drains in-flight requests, and UnstoppedServiceReport surfaces
anything that missed the deadline.

Usage:

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return tree.Serve(ctx)
*/
package supervisor
