package casino

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/casino/internal/core"
)

// Build is a declared-value stack of cards on the table. The sum of its card
// values always equals its value.
type Build struct {
	id    int
	cards []core.Card
	value int
	owner PlayerID
	multi bool
}

// BuildView is a read-only copy of a build.
type BuildView struct {
	ID    int
	Cards []core.Card
	Value int
	Owner PlayerID
	Multi bool
}

func (b *Build) view() BuildView {
	return BuildView{
		ID:    b.id,
		Cards: slices.Clone(b.cards),
		Value: b.value,
		Owner: b.owner,
		Multi: b.multi,
	}
}

func (v BuildView) String() string {
	kind := "build"
	if v.Multi {
		kind = "multi-build"
	}
	return fmt.Sprintf("%s #%d of %d [%s] owned by p%d", kind, v.ID, v.Value, core.ShortList(v.Cards), v.Owner)
}

// buildViews copies a build list for callers.
func buildViews(builds []*Build) []BuildView {
	out := make([]BuildView, len(builds))
	for i, b := range builds {
		out[i] = b.view()
	}
	return out
}
