// Package mocks provides centralized mock implementations for testing.
//
// Mocks here use function fields: a test sets only the methods it cares about,
// and unset methods return the default values set on the struct.
//
// Usage:
//
// Import the mocks package in your test file and create the required mock:
//
//	import "github.com/phrazzld/tasks-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    mockTaskService := &mocks.MockTaskService{
//	        GetTaskFn: func(ctx context.Context, id int64) (domain.Task, error) {
//	            return domain.Task{ID: id, Title: "mocked", Status: domain.TaskStatusPending}, nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Record calls where tests need to assert on arguments
package mocks
