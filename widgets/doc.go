// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (framed boxes, popup overlay compositor)
//
// Not allowed here:
// - key handling, navigation state, or screen policy
package widgets
