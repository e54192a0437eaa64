// Package memory provides process-local implementations of the store
// interfaces. Data lives only as long as the process does.
package memory
