// Package field provides the moving balls and the implicit scalar field they
// generate.
//
// Each [Ball] contributes radius/distance to the field at a point; [Balls]
// sums the contributions of every ball:
//
//   - [Ball.Contribution]: inverse-distance potential of one ball
//   - [Balls.At]: aggregate field value at a point
//   - [Balls.Advance]: one physics tick with wall reflection
//   - [Spawn]: randomized initial balls from an explicit source
//
// # Example
//
//	rng := rand.New(rand.NewSource(42))
//	balls := field.Spawn(rng, cfg)
//	v := balls.At(3, 4)
//	balls.Advance(cfg.Width, cfg.Height)
//
// # Thread Safety
//
// Balls is a plain slice and is NOT safe for concurrent mutation. The
// animation loop owns it exclusively.
package field
