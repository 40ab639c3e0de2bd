// Package viz renders lattice snapshots and observable series in the
// terminal.
//
//   - [Canvas]: Braille-based pixel canvas, one dot per up spin via [SpinCanvas]
//   - [SpinBlocks]: one character per cell, for small lattices
//   - [SparklineChart] and [ProgressBar]: lipgloss-styled inline charts for
//     the energy trace and sweep progress
//
// Planes come from storage.SnapshotRecord.Plane; 3D lattices are shown one
// slab at a time.
package viz
