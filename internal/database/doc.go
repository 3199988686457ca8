// Package database provides database connectivity for the todos API.
//
// The database package abstracts the concrete store and provides a
// consistent interface for data access across the application.
//
// # Drivers
//
// Two drivers implement Database:
//
//   - SQLiteDB (DB_DRIVER=sqlite, default): database/sql over mattn/go-sqlite3.
//     DB_PATH is a file path or ":memory:".
//   - SurrealDB (DB_DRIVER=surrealdb): a websocket connection to a SurrealDB
//     server selected by DB_HOST, DB_PORT, DB_NAMESPACE and DB_DATABASE.
//
// # Named Variables
//
// Statements reference variables as $name and receive them in a map:
//
//	rows, err := db.Query(ctx,
//	    "SELECT * FROM todos WHERE title LIKE $title",
//	    map[string]interface{}{"title": "%milk%"})
//
// # Error Types
//
// Standard error types for data operations:
//
//   - ErrNotFound: Record does not exist
//   - ErrConnection: Database connection failed
//   - ErrQuery: Statement failed
package database
