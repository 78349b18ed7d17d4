package sim

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the exact bit patterns of a trajectory. Two runs have
// the same fingerprint only if every velocity and orientation component
// matches bit for bit.
func Fingerprint(samples []Sample) uint64 {
	d := xxhash.New()
	var buf [8]byte
	write := func(bits uint64) {
		binary.LittleEndian.PutUint64(buf[:], bits)
		_, _ = d.Write(buf[:])
	}
	for _, s := range samples {
		write(s.Tick)
		for _, c := range s.State.Velocity {
			write(math.Float64bits(c))
		}
		q := s.State.Orientation
		write(math.Float64bits(q.W))
		for _, c := range q.V {
			write(math.Float64bits(c))
		}
	}
	return d.Sum64()
}
