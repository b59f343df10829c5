package repo

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"clans/src/core/domain"
)

const clanColumns = "id, name, region, created_at"

// listKey selects one of the fixed list statements.
type listKey struct {
	sortBy domain.SortField
	order  domain.SortOrder
}

// statements holds every SQL string the repository runs. They are built once
// from the configured schema and table; request values only ever travel as
// bind parameters.
type statements struct {
	insert string
	get    string
	delete string
	list   map[listKey]string
}

func newStatements(schema, table string) *statements {
	t := pgx.Identifier{schema, table}.Sanitize()

	s := &statements{
		insert: fmt.Sprintf(`INSERT INTO %s (name, region, created_at)
			VALUES ($1, $2, NOW())
			RETURNING %s`, t, clanColumns),
		get:    fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, clanColumns, t),
		delete: fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING id`, t),
		list:   make(map[listKey]string, len(domain.SortFields)*len(domain.SortOrders)),
	}

	for _, f := range domain.SortFields {
		for _, o := range domain.SortOrders {
			s.list[listKey{f, o}] = fmt.Sprintf(`SELECT %s FROM %s
				WHERE ($1::text IS NULL OR region = $1::text)
				ORDER BY %s
				LIMIT $2 OFFSET $3`, clanColumns, t, orderBy(f, o))
		}
	}

	return s
}

// orderBy renders the ORDER BY list. id breaks ties so pages stay stable
// when several rows share the sort key.
func orderBy(f domain.SortField, o domain.SortOrder) string {
	dir := strings.ToUpper(string(o))
	if f == domain.SortByID {
		return "id " + dir
	}
	return fmt.Sprintf("%s %s, id %s", f, dir, dir)
}

// listStatement returns the statement for q, or false if q carries a sort
// field or order outside the allow-lists.
func (s *statements) listStatement(q domain.ListQuery) (string, bool) {
	stmt, ok := s.list[listKey{q.SortBy, q.Order}]
	return stmt, ok
}
