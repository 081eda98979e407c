package combat

import (
	"log/slog"

	"github.com/udisondev/battlecore/internal/ai"
	"github.com/udisondev/battlecore/internal/game/skill"
	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/rng"
)

// Engine runs complete battles. An Engine holds no per-battle state; every
// Run creates fresh CC and buff trackers. It is not safe for concurrent use
// because Runs share the random source: use one Engine per goroutine.
type Engine struct {
	src    rng.Source
	rules  Rules
	policy *ai.Policy
}

// NewEngine creates an engine drawing every random decision from src.
func NewEngine(src rng.Source, rules Rules) *Engine {
	return &Engine{
		src:    src,
		rules:  rules.normalized(),
		policy: ai.NewPolicy(src),
	}
}

// Rules returns the effective rules of the engine.
func (e *Engine) Rules() Rules {
	return e.rules
}

// RunAutoCombat runs one battle with default rules and the given round limit
// (≤0 means DefaultMaxRounds).
func RunAutoCombat(player, npc model.Combatant, src rng.Source, maxRounds int) *model.CombatResult {
	rules := DefaultRules()
	rules.MaxRounds = maxRounds
	return NewEngine(src, rules).Run(player, npc)
}

// battle is the mutable state of a single Run.
type battle struct {
	e      *Engine
	cc     *skill.CCTracker
	buffs  *skill.BuffTracker
	res    *Resolver
	hp     map[string]int
	maxHP  map[string]int
	dealt  map[string]int
	rounds []model.CombatRound
}

// Run simulates player vs npc to completion.
//
// Each round both sides pick an action, then act in speed order. A stunned or
// frozen actor logs a skipped "defend" and only its CC ticks. An acting actor
// ticks CC and buffs after its action. The round ends early when the defender
// drops to 0 HP. The battle ends when either side is at or below 0 HP or after
// MaxRounds rounds, so the log never exceeds 2×MaxRounds entries.
func (e *Engine) Run(player, npc model.Combatant) *model.CombatResult {
	p := player.Sanitized()
	n := npc.Sanitized()

	b := &battle{
		e:     e,
		cc:    skill.NewCCTracker(e.src),
		buffs: skill.NewBuffTracker(),
		hp:    make(map[string]int, 2),
		maxHP: make(map[string]int, 2),
		dealt: map[string]int{p.ID: 0, n.ID: 0},
	}
	b.res = NewResolver(e.src, b.cc, b.buffs)
	b.maxHP[p.ID] = CombatantMaxHP(&p)
	b.maxHP[n.ID] = CombatantMaxHP(&n)
	b.hp[p.ID] = b.maxHP[p.ID]
	b.hp[n.ID] = b.maxHP[n.ID]

	for turn := 1; turn <= e.rules.MaxRounds && b.alive(&p) && b.alive(&n); turn++ {
		b.playRound(turn, &p, &n)
	}

	winner, loser := decideWinner(&p, &n, b.hp[p.ID], b.hp[n.ID], e.rules.TieBreak)

	slog.Debug("battle finished",
		"winner", winner.ID,
		"loser", loser.ID,
		"entries", len(b.rounds),
		"winner_hp", b.hp[winner.ID],
		"loser_hp", b.hp[loser.ID])

	return &model.CombatResult{
		WinnerID:    winner.ID,
		LoserID:     loser.ID,
		Rounds:      b.rounds,
		DamageDealt: b.dealt,
		FinalHP:     b.hp,
		MaxHP:       b.maxHP,
	}
}

func (b *battle) alive(c *model.Combatant) bool {
	return b.hp[c.ID] > 0
}

func (b *battle) playRound(turn int, p, n *model.Combatant) {
	ps := b.buffs.BuffedStats(p.ID, p.Stats)
	ns := b.buffs.BuffedStats(n.ID, n.Stats)
	first, second := TurnOrder(p, n, ps.Spd, ns.Spd, b.e.src)

	actions := map[string]model.Action{
		first.ID:  b.choose(first),
		second.ID: b.choose(second),
	}

	for _, pair := range [2][2]*model.Combatant{{first, second}, {second, first}} {
		actor, target := pair[0], pair[1]
		b.act(turn, actor, target, actions)
		if !b.alive(target) {
			return
		}
	}
}

// choose asks the AI policy for an action. Disabled combatants do not roll
// and get no action, so their logged "defend" never works as a reaction.
func (b *battle) choose(c *model.Combatant) model.Action {
	if _, disabled := b.cc.IsDisabled(c.ID); disabled {
		return ""
	}
	stats := b.buffs.BuffedStats(c.ID, c.Stats)
	return b.e.policy.Choose(ai.Situation{
		Self:     c,
		Stats:    stats,
		HP:       b.hp[c.ID],
		MaxHP:    b.maxHP[c.ID],
		Silenced: b.cc.IsSilenced(c.ID),
	})
}

func (b *battle) act(turn int, actor, target *model.Combatant, actions map[string]model.Action) {
	if ccType, disabled := b.cc.IsDisabled(actor.ID); disabled {
		b.rounds = append(b.rounds, model.CombatRound{
			Turn:                turn,
			AttackerID:          actor.ID,
			DefenderID:          target.ID,
			Action:              model.ActionDefend,
			ElementalMultiplier: 1.0,
			SkippedCC:           ccType,
			Effects:             []string{actor.Name + " is " + pastTense(ccType) + " and cannot act"},
		})
		// Buffs intentionally keep their duration on a skipped turn.
		b.cc.Tick(actor.ID)
		return
	}

	action := actions[actor.ID]
	downgraded := false
	if action == model.ActionSpell && b.cc.IsSilenced(actor.ID) {
		action = model.ActionAttack
		downgraded = true
	}

	var reaction model.Action
	if r := actions[target.ID]; r.IsReaction() {
		if _, disabled := b.cc.IsDisabled(target.ID); !disabled {
			reaction = r
		}
	}

	round := b.res.Resolve(turn, actor, target, action, reaction)
	if downgraded {
		round.Effects = append([]string{actor.Name + " is silenced and attacks instead"}, round.Effects...)
	}

	b.hp[target.ID] -= round.Damage
	b.dealt[actor.ID] += round.Damage
	b.rounds = append(b.rounds, round)

	b.cc.Tick(actor.ID)
	b.buffs.Tick(actor.ID)
}
