// Package stackfile defines the serialization formats for flexstack:
// TOML stack documents on the way in, and resolved JSON layouts on the
// way out.
//
// A stack document describes one container (axis, spacing, alignment,
// proposed size) and its ordered items. Items come in three kinds:
//
//   - box: a rectangle with a natural size, optionally growable or
//     carrying a relative fraction of the container's length
//   - text: a text block measured in terminal cells
//   - spacer: pure filler with no intrinsic size
//
// A resolved layout is the positioned counterpart: the container's
// resolved size plus one placed rectangle per item, in document order.
// The format is designed for round-trip fidelity and carries bson tags
// so layouts can be stored in the Mongo cache backend unchanged.
package stackfile
