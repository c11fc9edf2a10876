package agent

import (
	"strings"
	"time"

	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/world"
)

type Kind string

const (
	KindNPC      Kind = "npc"
	KindStranger Kind = "stranger"
)

// Id prefixes mark synthetic claimants. Valuation and allegiance both key
// off these to keep NPC-held land out of sovereignty standings.
const (
	NPCIDPrefix      = "npc-"
	StrangerIDPrefix = "stranger-"
)

// Allegiance is a Stranger's pledge to a sovereignty. It is a weak
// reference by owner id only; the sovereignty may be renamed or dissolved
// without this record being touched.
type Allegiance struct {
	OwnerID     string    `json:"owner_id"`
	Username    string    `json:"username,omitempty"`
	Sovereignty string    `json:"sovereignty"`
	Flag        string    `json:"flag,omitempty"`
	PledgedAt   time.Time `json:"pledged_at"`
}

type Agent struct {
	ID           string            `json:"id"`
	Kind         Kind              `json:"kind"`
	Pos          world.Point       `json:"pos"`
	Facing       world.Direction   `json:"facing"`
	Health       int               `json:"health"`
	Coins        int               `json:"coins"`
	Inventory    economy.Inventory `json:"inventory"`
	LastActionAt time.Time         `json:"last_action_at"`
	Allegiance   *Allegiance       `json:"allegiance,omitempty"`
}

// ClampHealth keeps health inside [0, 100].
func (a *Agent) ClampHealth() {
	if a.Health < 0 {
		a.Health = 0
	}
	if a.Health > 100 {
		a.Health = 100
	}
}

// IsSynthetic reports whether the id belongs to an autonomous agent rather
// than a player.
func IsSynthetic(claimantID string) bool {
	return strings.HasPrefix(claimantID, NPCIDPrefix) || strings.HasPrefix(claimantID, StrangerIDPrefix)
}
