// Package fixtures provides test data factories for the todos API.
//
// # Factory Pattern
//
// Create a factory with a repository:
//
//	f := fixtures.New(repo)
//
// # Creating Test Data
//
//	todo := f.CreateTodo(t)                          // Random title and assignee
//	todo := f.CreateTodo(t, WithTitle("Buy milk"))   // Custom title
//	todo := f.CreateTodo(t, WithDone())              // Already done
//	list := f.SeedShoppingList(t)                    // Four known todos
//
// # Cleanup
//
// Test data goes away with the test database.
package fixtures
