package dice

import (
	"fmt"
	"regexp"
	"time"

	dicesession "github.com/KirkDiggler/rpg-spellbook/internal/repositories/dice_session"
)

const (
	// MaxDiceCount bounds a single roll
	MaxDiceCount = 100

	// MaxDieSize bounds the faces of a die; d100 is the largest numbered die
	MaxDieSize = 100

	// MaxModifier bounds the flat bonus or penalty of a roll
	MaxModifier = 1000
)

// "XdY" with an optional "+N" or "-N" modifier
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)(?:([+-])(\d+))?$`)

// notation is a parsed "XdY+N"
type notation struct {
	count    int
	size     int
	modifier int
}

func (n notation) String() string {
	switch {
	case n.modifier > 0:
		return fmt.Sprintf("%dd%d+%d", n.count, n.size, n.modifier)
	case n.modifier < 0:
		return fmt.Sprintf("%dd%d%d", n.count, n.size, n.modifier)
	default:
		return fmt.Sprintf("%dd%d", n.count, n.size)
	}
}

// RollDiceInput names the session a roll lands in. A zero TTL falls back to the
// orchestrator's session TTL.
type RollDiceInput struct {
	EntityID    string
	Context     string
	Notation    string
	Description string
	TTL         time.Duration
}

// RollDiceOutput carries the new roll and the session after appending it
type RollDiceOutput struct {
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

type GetRollSessionInput struct {
	EntityID string
	Context  string
}

type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

type ClearRollSessionInput struct {
	EntityID string
	Context  string
}

// ClearRollSessionOutput reports how many rolls the cleared session held
type ClearRollSessionOutput struct {
	RollsDeleted int32
}
