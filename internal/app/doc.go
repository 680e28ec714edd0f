// Package app provides the application service layer.
//
// Orchestrates use cases: submitting a point, reading and clearing a session's history.
// Sits between HTTP handlers and the session store. Depends on domain interfaces, not concrete implementations.
package app
