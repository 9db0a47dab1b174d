// Package interactors binds one request builder, the transport, and one
// result mapper per wire endpoint. Each method is a thin composition with
// no branching so the engine can be tested by substituting the Strategy.
package interactors
