package main

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"

	"houndfall/internal/core"
)

// snapshotHash implements spec.md §8 scenario 5's determinism check:
// "the SHA-256 of (tick, player.position, each wolf.position, rng_state)
// across all ticks is identical". Called once per tick and folded into
// a running hash so the whole run collapses to one digest.
func snapshotHash(h []byte, c *core.Core) []byte {
	sum := sha256.New()
	sum.Write(h)

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], c.GetTick())
	sum.Write(buf[:])

	writeFloat32 := func(v float32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		sum.Write(b[:])
	}
	writeFloat32(c.GetX())
	writeFloat32(c.GetY())

	n := int(c.GetEnemyCount())
	for i := 0; i < n; i++ {
		writeFloat32(c.GetEnemyX(i))
		writeFloat32(c.GetEnemyY(i))
	}

	var rngBuf [4]byte
	binary.LittleEndian.PutUint32(rngBuf[:], c.GetRNGState())
	sum.Write(rngBuf[:])

	return sum.Sum(nil)
}

func hashHex(h []byte) string { return hex.EncodeToString(h) }
