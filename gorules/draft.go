//go:build ruleguard

package gorules

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

// draftNoLogging keeps the draft package free of side effects.
func draftNoLogging(m dsl.Matcher) {
	m.Import("go.uber.org/zap")

	m.Match(`zap.L()`, `zap.S()`).
		Where(m.File().PkgPath.Matches(`internal/draft$`)).
		Report("draft must stay pure: return the problem instead of logging it")
}

func usecaseInvalidRequestWrapped(m dsl.Matcher) {
	m.Match(`fmt.Errorf("validate request: %v", $*_)`).
		Where(m.File().PkgPath.Matches(`internal/usecases`)).
		Report("wrap ErrInvalidRequest: fmt.Errorf(\"validate request: %w: %v\", ErrInvalidRequest, err)")
}
