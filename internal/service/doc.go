// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations. Errors are reported as
// sentinels (ErrTaskNotFound), domain validation errors (matching
// domain.ErrValidation), or *TaskServiceError for anything unexpected; the API
// layer maps these to HTTP status codes.
package service
