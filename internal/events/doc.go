// Package events provides types and interfaces for an event-driven architecture.
//
// This package defines event types and handler interfaces that allow for loose coupling
// between components in the system. The task service emits an event after every
// successful mutation without knowing which handlers (audit logging, metrics) consume it.
//
// The primary components are:
// - TaskEvent: Records a change to a task
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
