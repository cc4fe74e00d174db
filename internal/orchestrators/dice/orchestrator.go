// Package dice rolls numbered dice and keeps the results in per-entity sessions
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-spellbook/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
	"github.com/KirkDiggler/rpg-spellbook/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/rpg-spellbook/internal/repositories/dice_session"
)

// Service defines the interface for dice operations
type Service interface {
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	IDGenerator     idgen.Generator

	// SessionTTL applies to new sessions when the input sets none
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.SessionTTL < 0 {
		vb.Field("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	idGen           idgen.Generator
	sessionTTL      time.Duration
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		idGen:           cfg.IDGenerator,
		sessionTTL:      cfg.SessionTTL,
	}, nil
}

// parseNotation parses dice notation like "8d6" or "1d20+5"
func parseNotation(raw string) (notation, error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(raw)))
	if matches == nil {
		return notation{}, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY or XdY+N)", raw)
	}

	var n notation
	var err error
	if n.count, err = strconv.Atoi(matches[1]); err != nil {
		return notation{}, errors.InvalidArgumentf("invalid dice count in notation: %s", raw)
	}
	if n.size, err = strconv.Atoi(matches[2]); err != nil {
		return notation{}, errors.InvalidArgumentf("invalid die size in notation: %s", raw)
	}
	if matches[4] != "" {
		if n.modifier, err = strconv.Atoi(matches[4]); err != nil {
			return notation{}, errors.InvalidArgumentf("invalid modifier in notation: %s", raw)
		}
		if matches[3] == "-" {
			n.modifier = -n.modifier
		}
	}

	if n.count <= 0 || n.size <= 0 {
		return notation{}, errors.InvalidArgumentf("dice count and size must be positive: %s", raw)
	}
	if n.count > MaxDiceCount || n.size > MaxDieSize {
		return notation{}, errors.InvalidArgumentf("at most %dd%d may be rolled at once: %s", MaxDiceCount, MaxDieSize, raw)
	}
	if n.modifier > MaxModifier || n.modifier < -MaxModifier {
		return notation{}, errors.InvalidArgumentf("modifier must be within ±%d: %s", MaxModifier, raw)
	}

	return n, nil
}

// rollWithToolkit rolls through rpg-toolkit and returns the individual dice
// and their sum
func rollWithToolkit(count, size int) ([]int32, int32, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to create dice roll")
	}

	total := roll.GetValue()

	// The toolkit only exposes individual dice through the description,
	// formatted like "+2d6[3,4]=7"
	description := roll.GetDescription()
	var individual []int32
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start >= 0 && end > start {
		for _, ds := range strings.Split(description[start+1:end], ",") {
			if d, err := strconv.Atoi(strings.TrimSpace(ds)); err == nil {
				// nolint:gosec // die faces are bounded by MaxDieSize
				individual = append(individual, int32(d))
			}
		}
	}

	// nolint:gosec // bounded by MaxDiceCount * MaxDieSize
	return individual, int32(total), nil
}

// RollDice rolls dice using the specified notation and appends the result to
// the entity's session for the context
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	parsed, err := parseNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	individual, diceTotal, err := rollWithToolkit(parsed.count, parsed.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	// nolint:gosec // bounded by MaxModifier
	modifier := int32(parsed.modifier)
	roll := &dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Notation:    parsed.String(),
		Dice:        individual,
		Total:       diceTotal + modifier,
		Description: input.Description,
		DiceTotal:   diceTotal,
		Modifier:    modifier,
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})

	var session *dicesession.DiceSession
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to check for existing session")
		}

		ttl := input.TTL
		if ttl == 0 {
			ttl = o.sessionTTL
		}

		createOutput, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
			EntityID: input.EntityID,
			Context:  input.Context,
			Rolls:    []dicesession.DiceRoll{*roll},
			TTL:      ttl,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create dice session")
		}
		session = createOutput.Session
	} else {
		session = getOutput.Session
		session.Rolls = append(session.Rolls, *roll)

		if err := o.diceSessionRepo.Update(ctx, session); err != nil {
			return nil, errors.Wrap(err, "failed to update dice session")
		}
	}

	slog.Info("Dice rolled",
		"entity_id", input.EntityID,
		"context", input.Context,
		"notation", input.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{
		Roll:    roll,
		Session: session,
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{
		Session: getOutput.Session,
	}, nil
}

// ClearRollSession removes a dice roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.Info("Dice session cleared",
		"entity_id", input.EntityID,
		"context", input.Context,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{
		RollsDeleted: deleteOutput.RollsDeleted,
	}, nil
}
