// Package repository implements the data access layer for the todos API.
//
// TodoRepository owns the todos table. It is built from a database.Database
// handle and a Dialect, which renders the statements for one engine:
//
//   - DialectSQLite: SQL with $name parameters for github.com/mattn/go-sqlite3
//   - DialectSurrealDB: SurrealQL; inserts run as a BEGIN/COMMIT block that
//     bumps an id sequence
//
// # Query Patterns
//
//   - Parameterized queries with $variable syntax; user input never enters
//     the query text
//   - Substring filters are escaped so % and _ match literally in SQLite
//   - Results are ordered by id ascending
//
// # Example Usage
//
//	repo := NewTodoRepository(db, DialectSQLite)
//	if err := repo.Initialize(ctx); err != nil {
//	    return err
//	}
//	todos, err := repo.Query(ctx, model.ByID(42))
package repository
