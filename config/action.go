package config

import (
	"fmt"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/topology"
	"github.com/katalvlaran/spiderweb/web"
)

// Action is one scripted web operation. Op uses the web.Op* names; the
// other fields are read by the operations that need them.
type Action struct {
	Op         string        `yaml:"op" validate:"required,oneof=add_bridge remove_bridge relocate_bridge add_strand expand_radius set_favorite clear_favorite set_strand_kind move_to move_from move_to_center sit_at_center kill respawn make_visible make_invisible print_info reset_used"`
	Strand     int           `yaml:"strand"`
	Distance   int           `yaml:"distance"`
	Color      string        `yaml:"color"`
	Kind       bridges.Kind  `yaml:"kind"`
	StrandKind topology.Kind `yaml:"strand_kind"`
}

func (a Action) String() string {
	switch a.Op {
	case web.OpAddBridge:
		return fmt.Sprintf("%s %s d=%d s=%d %s", a.Op, a.Color, a.Distance, a.Strand, a.Kind)
	case web.OpRemoveBridge:
		return fmt.Sprintf("%s %s", a.Op, a.Color)
	case web.OpRelocateBridge:
		return fmt.Sprintf("%s %s d=%d", a.Op, a.Color, a.Distance)
	case web.OpExpandRadius:
		return fmt.Sprintf("%s +%d", a.Op, a.Distance)
	case web.OpSetFavorite, web.OpSetStrandKind:
		return fmt.Sprintf("%s s=%d %s", a.Op, a.Strand, a.StrandKind)
	case web.OpMoveTo, web.OpMoveFrom:
		return fmt.Sprintf("%s s=%d", a.Op, a.Strand)
	}
	return a.Op
}

// Apply runs the action on w. Operations that cannot fail return nil.
func (a Action) Apply(w *web.Web) error {
	switch a.Op {
	case web.OpAddBridge:
		return w.AddBridge(a.Color, a.Distance, a.Strand, a.Kind)
	case web.OpRemoveBridge:
		return w.RemoveBridge(a.Color)
	case web.OpRelocateBridge:
		return w.RelocateBridge(a.Color, a.Distance)
	case web.OpAddStrand:
		return w.AddStrand()
	case web.OpExpandRadius:
		return w.ExpandRadius(a.Distance)
	case web.OpSetFavorite:
		return w.SetFavoriteStrand(a.Strand, a.Color, a.StrandKind)
	case web.OpClearFavorite:
		return w.ClearFavoriteStrand()
	case web.OpSetStrandKind:
		return w.SetStrandKind(a.Strand, a.Color, a.StrandKind)
	case web.OpMoveTo:
		return w.MoveAgentTo(a.Strand)
	case web.OpMoveFrom:
		return w.MoveAgentFrom(a.Strand)
	case web.OpMoveToCenter:
		return w.MoveAgentToCenter()
	case web.OpSitAtCenter:
		w.SitAgentAtCenter()
	case web.OpKill:
		w.KillAgent()
	case web.OpRespawn:
		w.RespawnAgent()
	case web.OpMakeVisible:
		w.MakeVisible()
	case web.OpMakeInvisible:
		w.MakeInvisible()
	case web.OpPrintInfo:
		w.PrintInfo()
	case web.OpResetUsed:
		w.ResetUsedBridges()
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidScenario, a.Op)
	}
	return nil
}

// Outcome is the result of one scripted action.
type Outcome struct {
	Action   Action
	Err      error
	Strand   int // agent strand afterwards, -1 at the center
	Alive    bool
	LastOK   bool
	Bridges  int
	Favorite int
}

// Run applies every action in order. Failures do not stop the script; they
// are recorded in the outcomes.
func Run(w *web.Web, actions []Action) []Outcome {
	out := make([]Outcome, len(actions))
	for i, a := range actions {
		err := a.Apply(w)
		out[i] = Outcome{
			Action:   a,
			Err:      err,
			Strand:   w.CurrentStrand(),
			Alive:    w.Agent().Alive,
			LastOK:   w.LastActionOK(),
			Bridges:  len(w.Bridges()),
			Favorite: w.FavoriteStrand(),
		}
	}
	return out
}
