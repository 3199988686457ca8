// Package testdb provides test database utilities for the todos API.
//
// # Test Database Setup
//
// Create a test database for each test; cleanup is automatic:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    // Use tdb.DB for database operations
//	}
//
// # Isolation
//
// Every SQLite test database is a private :memory: database. SurrealDB test
// databases get a unique namespace that is removed on cleanup:
//
//	tdb := testdb.NewSurreal(t) // skipped unless TEST_SURREAL_HOST is set
//
// # Timeout Context
//
//	ctx := tdb.Ctx() // 10 second timeout
package testdb
