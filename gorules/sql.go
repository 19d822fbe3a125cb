//go:build ruleguard

package gorules

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

func sqlNoContextlessCalls(m dsl.Matcher) {
	m.Import("database/sql")

	m.Match(
		`$db.Query($*_)`,
		`$db.QueryRow($*_)`,
		`$db.Exec($*_)`,
	).
		Where(
			m.File().PkgPath.Matches(`internal/(repositories|store)`) &&
				(m["db"].Type.Is(`*sql.DB`) || m["db"].Type.Is(`*sql.Tx`)),
		).
		Report("sql call without context: use the *Context variant")
}
