// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific storage technologies or persistence details.
//
// Concrete implementations live under internal/platform.
package store
