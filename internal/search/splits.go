package search

import (
	"fmt"

	"github.com/slotworks/trackgen/internal/geom"
)

// Split is one chirality assignment of the requested turn sections: Lefts of
// them turn left, Rights turn right. Straights is carried along so a split
// fully describes its section inventory.
type Split struct {
	Lefts     int
	Rights    int
	Straights int
}

func (s Split) String() string {
	return fmt.Sprintf("%dL/%dR/%dS", s.Lefts, s.Rights, s.Straights)
}

// SplitPlan is a Split plus the planner's verdict. Skipped splits are still
// reported so a run's output accounts for every chirality assignment.
type SplitPlan struct {
	Split  Split
	Skip   bool
	Reason string
}

// planSplits enumerates every chirality assignment k = 0..Turns and prunes
// the ones that cannot produce a closed layout. Each turn contributes ±60°
// of heading, so a split's net rotation is (2k − Turns) × 60°; unless the
// orientation tolerance admits a 60° residual, net rotations that are not a
// multiple of 360° can never close. Prefix chirality is checked here too so
// contradictory splits are skipped before any tracing.
func planSplits(req *Request, orientTol float64) []SplitPlan {
	_, prefixLefts, prefixRights := req.Prefix.Counts()

	plans := make([]SplitPlan, 0, req.Turns+1)
	for k := 0; k <= req.Turns; k++ {
		plan := SplitPlan{Split: Split{
			Lefts:     k,
			Rights:    req.Turns - k,
			Straights: req.Straights,
		}}
		net := 2*k - req.Turns
		switch {
		case orientTol < geom.TurnSweep && mod6(net) != 0:
			plan.Skip = true
			plan.Reason = fmt.Sprintf("net rotation %d×60° cannot close", net)
		case prefixLefts > plan.Split.Lefts:
			plan.Skip = true
			plan.Reason = fmt.Sprintf("prefix needs %d left turns, split has %d", prefixLefts, plan.Split.Lefts)
		case prefixRights > plan.Split.Rights:
			plan.Skip = true
			plan.Reason = fmt.Sprintf("prefix needs %d right turns, split has %d", prefixRights, plan.Split.Rights)
		}
		plans = append(plans, plan)
	}
	return plans
}

func mod6(n int) int {
	return ((n % 6) + 6) % 6
}
