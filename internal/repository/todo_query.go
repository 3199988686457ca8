package repository

import (
	"fmt"
	"strings"

	"github.com/forgo/todos/api/internal/database"
	"github.com/forgo/todos/api/internal/model"
)

// Statement is a query with its named parameters. Every user-supplied value
// travels in Vars, never in Query.
type Statement struct {
	Query string
	Vars  map[string]interface{}
}

// Dialect renders todo statements for one database engine
type Dialect interface {
	Name() string
	Schema() []Statement
	Insert(c model.TodoCandidate) Statement
	Select(f model.TodoFilter) (Statement, error)
	Update(row model.TodoRow) Statement
	Delete(id int64) Statement
}

var (
	// DialectSQLite renders SQL for github.com/mattn/go-sqlite3
	DialectSQLite Dialect = sqliteDialect{}
	// DialectSurrealDB renders SurrealQL
	DialectSurrealDB Dialect = surrealDialect{}
)

// DialectFor returns the dialect matching a database driver name
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "", database.DriverSQLite:
		return DialectSQLite, nil
	case database.DriverSurrealDB:
		return DialectSurrealDB, nil
	default:
		return nil, fmt.Errorf("%w: %q", database.ErrUnsupportedDriver, driver)
	}
}

// selectSyntax holds the pieces that differ between engines when building a
// filtered select.
type selectSyntax struct {
	base     string
	byID     string
	matchAll string
	contains func(column, param string) string
	pattern  func(value string) string
	limit    string
	offset   string
}

// buildSelect turns a filter into a statement. The id short-circuits every
// other field; otherwise title and assignedTo are ANDed substring matches,
// followed by limit and offset.
func buildSelect(f model.TodoFilter, syn selectSyntax) (Statement, error) {
	if err := f.Validate(); err != nil {
		return Statement{}, err
	}

	vars := make(map[string]interface{})

	if f.ID != nil {
		vars["id"] = *f.ID
		return Statement{Query: syn.base + " " + syn.byID, Vars: vars}, nil
	}

	var sb strings.Builder
	sb.WriteString(syn.base)
	sb.WriteString(" WHERE ")
	sb.WriteString(syn.matchAll)

	if f.Title != nil {
		sb.WriteString(" AND ")
		sb.WriteString(syn.contains("title", "title"))
		vars["title"] = syn.pattern(*f.Title)
	}
	if f.AssignedTo != nil {
		sb.WriteString(" AND ")
		sb.WriteString(syn.contains("assignedTo", "assignedTo"))
		vars["assignedTo"] = syn.pattern(*f.AssignedTo)
	}

	sb.WriteString(" ORDER BY id")

	if f.Limit != nil {
		sb.WriteString(" ")
		sb.WriteString(syn.limit)
		vars["limit"] = *f.Limit
	}
	if f.Offset != nil {
		sb.WriteString(" ")
		sb.WriteString(syn.offset)
		vars["offset"] = *f.Offset
	}

	return Statement{Query: sb.String(), Vars: vars}, nil
}

// SQLite

type sqliteDialect struct{}

var sqliteSelect = selectSyntax{
	base:     `SELECT id, title, assignedTo, done FROM todos`,
	byID:     `WHERE id = $id`,
	matchAll: `1=1`,
	contains: func(column, param string) string {
		return column + ` LIKE $` + param + ` ESCAPE '\'`
	},
	pattern: func(value string) string {
		return "%" + likeEscaper.Replace(value) + "%"
	},
	limit:  `LIMIT $limit`,
	offset: `OFFSET $offset`,
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (sqliteDialect) Name() string { return database.DriverSQLite }

func (sqliteDialect) Schema() []Statement {
	return []Statement{{
		Query: `CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			assignedTo TEXT NOT NULL,
			done INTEGER NOT NULL DEFAULT 0
		)`,
	}}
}

func (sqliteDialect) Insert(c model.TodoCandidate) Statement {
	return Statement{
		Query: `INSERT INTO todos (title, assignedTo, done) VALUES ($title, $assignedTo, 0)`,
		Vars: map[string]interface{}{
			"title":      c.Title,
			"assignedTo": c.AssignedTo,
		},
	}
}

func (sqliteDialect) Select(f model.TodoFilter) (Statement, error) {
	return buildSelect(f, sqliteSelect)
}

func (sqliteDialect) Update(row model.TodoRow) Statement {
	return Statement{
		Query: `UPDATE todos SET title = $title, assignedTo = $assignedTo, done = $done WHERE id = $id`,
		Vars:  rowVars(row),
	}
}

func (sqliteDialect) Delete(id int64) Statement {
	return Statement{
		Query: `DELETE FROM todos WHERE id = $id`,
		Vars:  map[string]interface{}{"id": id},
	}
}

// SurrealDB

type surrealDialect struct{}

var surrealSelect = selectSyntax{
	base:     `SELECT * FROM todos`,
	byID:     `WHERE id = type::thing('todos', $id)`,
	matchAll: `true`,
	contains: func(column, param string) string {
		return `string::contains(` + column + `, $` + param + `)`
	},
	pattern: func(value string) string { return value },
	limit:   `LIMIT $limit`,
	offset:  `START $offset`,
}

func (surrealDialect) Name() string { return database.DriverSurrealDB }

func (surrealDialect) Schema() []Statement {
	return []Statement{
		{Query: `DEFINE TABLE IF NOT EXISTS todos SCHEMAFULL`},
		{Query: `DEFINE FIELD IF NOT EXISTS title ON todos TYPE string`},
		{Query: `DEFINE FIELD IF NOT EXISTS assignedTo ON todos TYPE string`},
		{Query: `DEFINE FIELD IF NOT EXISTS done ON todos TYPE int DEFAULT 0`},
		{Query: `DEFINE TABLE IF NOT EXISTS todo_sequence SCHEMALESS`},
	}
}

// Insert bumps the id sequence and creates the record in one transaction,
// standing in for SQLite's AUTOINCREMENT.
func (surrealDialect) Insert(c model.TodoCandidate) Statement {
	tb := database.NewTxBuilder()
	tb.AddRaw(`LET $next = (UPSERT ONLY todo_sequence:todos SET value += 1 RETURN VALUE value)`)
	tb.Add(`CREATE ONLY type::thing('todos', $next) CONTENT {
		title: $title,
		assignedTo: $assignedTo,
		done: 0
	}`, map[string]interface{}{
		"title":      c.Title,
		"assignedTo": c.AssignedTo,
	})
	query, vars := tb.Build()
	return Statement{Query: query, Vars: vars}
}

func (surrealDialect) Select(f model.TodoFilter) (Statement, error) {
	return buildSelect(f, surrealSelect)
}

func (surrealDialect) Update(row model.TodoRow) Statement {
	return Statement{
		Query: `UPDATE todos SET title = $title, assignedTo = $assignedTo, done = $done WHERE id = type::thing('todos', $id)`,
		Vars:  rowVars(row),
	}
}

func (surrealDialect) Delete(id int64) Statement {
	return Statement{
		Query: `DELETE todos WHERE id = type::thing('todos', $id) RETURN BEFORE`,
		Vars:  map[string]interface{}{"id": id},
	}
}

func rowVars(row model.TodoRow) map[string]interface{} {
	return map[string]interface{}{
		"id":         row.ID,
		"title":      row.Title,
		"assignedTo": row.AssignedTo,
		"done":       row.Done,
	}
}
