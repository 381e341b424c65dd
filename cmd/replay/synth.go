package main

import (
	"houndfall/internal/input"
	"houndfall/internal/rng"
)

// synthFrames produces a deterministic pseudo-random input sequence
// from seed, the exact shape spec.md §8 scenario 5 calls for: "record
// 600 ticks of pseudo-random input frames under seed = 12345". Reusing
// internal/rng rather than math/rand keeps the generator itself
// deterministic across platforms, the same property the core demands
// of its own RNG.
func synthFrames(seed uint32, ticks int) []input.RawFrame {
	gen := rng.New(seed)
	frames := make([]input.RawFrame, ticks)
	for i := range frames {
		frames[i] = input.RawFrame{
			MoveX:    float32(gen.NextFloat()*2 - 1),
			MoveY:    float32(gen.NextFloat()*2 - 1),
			Rolling:  gen.Choose(10) == 0,
			Jumping:  gen.Choose(8) == 0,
			Light:    gen.Choose(4) == 0,
			Heavy:    gen.Choose(12) == 0,
			Blocking: gen.Choose(6) == 0,
			Special:  gen.Choose(20) == 0,
		}
	}
	return frames
}
