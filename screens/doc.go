// Package screens contains the concrete panels of the kiosk UI.
//
// Allowed here:
//   - screen implementations that satisfy core.Screen
//   - the shared focus-group menu component and per-screen wiring of actions
//     to OS collaborators
//
// Not allowed here:
// - navigation policy (the stack lives in core)
// - direct process/file primitives (those live in internal/system)
package screens
