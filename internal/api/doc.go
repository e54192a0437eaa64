// Package api handles incoming HTTP requests, request validation and response
// formatting for the task resource. It acts as an adapter between HTTP clients
// and the task service, translating transport concerns to service calls and
// service errors back to status codes.
package api
