// Package topology owns the static shape of a spider web: how many radial
// strands it has, how long they are, and where each one ends on the rim.
//
// What:
//
//   - Generate lays out exactly N strands, strand i at angle 2π·i/N.
//   - ScaledPoint / PointAt interpolate between the center and a strand's rim
//     endpoint; bridges and the agent use it to find their coordinates.
//   - Resize regenerates every strand. Per-strand customizations (kind, color)
//     are dropped; the owner of the Topology re-applies them.
//
// Strand kinds:
//
//   - Normal: inert.
//   - Killer: kills the agent on arrival.
//   - Bouncy: pushes the agent to the next strand at the same distance.
//
// Complexity:
//
//   - Generate / Resize: O(N) time and memory.
//   - ScaledPoint, PointAt, SetKind: O(1).
//
// Errors:
//
//   - ErrInvalidStrand: strand index outside [0, N).
//   - ErrInvalidScale: scale outside [0, 1].
//   - ErrInvalidStrandCount: N < 1.
//   - ErrInvalidRadius: radius < 1.
package topology
