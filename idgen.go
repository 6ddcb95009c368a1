package layout

import (
	"strconv"

	"github.com/stoewer/go-strcase"
)

// idGenerator produces stable auto-generated element ids ("text-3",
// "rectangle-1", ...) when a builder call omits Config.ID, normalizing the
// element kind name the same way the corpus's WPT tooling normalizes
// identifiers before writing fixtures.
type idGenerator struct {
	counters map[string]int
}

func newIDGenerator() *idGenerator {
	return &idGenerator{counters: make(map[string]int)}
}

func (g *idGenerator) next(kind ElementKind) string {
	base := strcase.KebabCase(kind.String())
	g.counters[base]++
	return base + "-" + strconv.Itoa(g.counters[base])
}
