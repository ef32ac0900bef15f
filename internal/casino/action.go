package casino

import (
	"fmt"
	"slices"
)

// Action is a move a player can submit: PlayAction, BuildAction or
// ModifyAction.
type Action interface {
	fmt.Stringer
	playerAction()
}

// PlayAction plays a hand card to capture or, failing that, to trail.
type PlayAction struct {
	HandIndex int
}

func (PlayAction) playerAction() {}

func (a PlayAction) String() string {
	return fmt.Sprintf("play hand[%d]", a.HandIndex)
}

// BuildAction starts a build from a hand card and loose table cards.
type BuildAction struct {
	HandIndex    int
	TableIndices []int
	Value        int
}

func (BuildAction) playerAction() {}

func (a BuildAction) String() string {
	return fmt.Sprintf("build %d from hand[%d] + table%v", a.Value, a.HandIndex, a.TableIndices)
}

// ModifyAction extends an existing build with a hand card.
type ModifyAction struct {
	BuildID   int
	HandIndex int
	Value     int
}

func (ModifyAction) playerAction() {}

func (a ModifyAction) String() string {
	return fmt.Sprintf("raise build #%d to %d with hand[%d]", a.BuildID, a.Value, a.HandIndex)
}

// Apply dispatches an action to the matching operation.
func (g *Game) Apply(id PlayerID, a Action) error {
	switch a := a.(type) {
	case PlayAction:
		_, err := g.PlayCard(id, a.HandIndex)
		return err
	case BuildAction:
		_, err := g.CreateBuild(id, a.HandIndex, slices.Clone(a.TableIndices), a.Value)
		return err
	case ModifyAction:
		_, err := g.ModifyBuild(id, a.BuildID, a.HandIndex, a.Value)
		return err
	default:
		return fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
}
