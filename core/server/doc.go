// Package server provides an HTTP server wrapper with graceful shutdown,
// environment-based configuration, and errgroup-friendly lifecycle management.
//
// # Basic Usage
//
//	srv := server.New(":8080", server.WithLogger(log))
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := srv.Start(ctx, handler); err != nil {
//		log.Error("server failed", "error", err)
//	}
//
// # Coordinated Lifecycle
//
// Run returns a function suitable for errgroup.Group, shutting the server
// down gracefully when the group's context is cancelled:
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	if err := g.Wait(); err != nil {
//		log.Error("exit", "error", err)
//	}
//
// # Configuration
//
// Config loads address, timeouts, and header limits from environment
// variables:
//
//	cfg := config.MustLoad[server.Config]()
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
package server
