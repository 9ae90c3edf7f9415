// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - the screen stack (navigator), message contracts, key registry
// - the closed action vocabulary menu items dispatch through
// - chrome rendering (header clock, status line, key-hint footer)
//
// Not allowed here:
// - concrete screen implementations or their menus
// - OS collaborators (spawning processes, reading system files)
package core
