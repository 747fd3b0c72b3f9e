// Package anim drives the metaball animation: it owns the balls and the
// corner grid and cycles render, advance and pace once per frame.
//
// The loop is single-threaded. Run blocks until its context is cancelled
// or the terminal rejects output:
//
//	loop, _ := anim.New(cfg, term.NewScreen(os.Stdout), pacer.System, rng)
//	err := loop.Run(ctx)
//
// Observers and metrics see every rendered frame before the balls move.
package anim
