package service

import (
	"errors"
	"testing"

	"github.com/ayish1998/UpPaws-sub002/internal/game"
)

func TestCreateBattleProjectsSpeciesStats(t *testing.T) {
	repo := newMockRepo(testSpecies()...)
	cfg := testConfig()

	b, err := CreateBattle(repo, cfg, game.BattleTrainer, "ABCD1234", []TeamRequest{humanTeam(), aiTeam()})
	if err != nil {
		t.Fatalf("CreateBattle: %v", err)
	}
	if b.State != game.BattleInProgress {
		t.Fatalf("state = %s, want in_progress", b.State)
	}
	if b.ID == 0 {
		t.Fatalf("battle not persisted")
	}
	if b.InitialOrder == "" {
		t.Fatalf("initial strike order not stamped")
	}
	// The deadline is armed at creation so the timeout scanner sees battles
	// nobody ever acts in.
	if b.ActionDeadline.IsZero() {
		t.Fatalf("action deadline not armed at creation")
	}

	c := b.CombatantAt(0, 0)
	// Level projection: health = base + 2*level, other stats = base + level.
	if c.MaxHealth != 30+2*5 || c.CurrentHealth != c.MaxHealth {
		t.Fatalf("health = %d/%d", c.CurrentHealth, c.MaxHealth)
	}
	if c.Attack != 12+5 || c.Defense != 10+5 || c.Speed != 14+5 {
		t.Fatalf("stats = %d/%d/%d", c.Attack, c.Defense, c.Speed)
	}
	if c.Nickname != "Splash" || c.DisplayName() != "Splash" {
		t.Fatalf("nickname lost: %q", c.Nickname)
	}
	// Moves default to the learnable list.
	if len(c.Moves) != 1 || c.Moves[0].Name != "Mud Shot" {
		t.Fatalf("moves = %+v", c.Moves)
	}
	// Persisted columns carry the joined lists.
	if c.MoveNames != "Mud Shot" || c.TypeTags != "river" {
		t.Fatalf("persisted columns = %q / %q", c.MoveNames, c.TypeTags)
	}
}

func TestCreateBattleUnknownSpecies(t *testing.T) {
	repo := newMockRepo(testSpecies()...)
	team := humanTeam()
	team.Animals[0].Species = "Basilisk"

	_, err := CreateBattle(repo, testConfig(), game.BattleTrainer, "ABCD1234", []TeamRequest{team, aiTeam()})
	if !errors.Is(err, ErrUnknownSpecies) {
		t.Fatalf("err = %v, want ErrUnknownSpecies", err)
	}
}

func TestCreateBattleRejectsUnlearnableMove(t *testing.T) {
	repo := newMockRepo(testSpecies()...)
	team := humanTeam()
	// Sand Bite exists but Otterling cannot learn it.
	team.Animals[0].Moves = []string{"Sand Bite"}

	_, err := CreateBattle(repo, testConfig(), game.BattleTrainer, "ABCD1234", []TeamRequest{team, aiTeam()})
	if !errors.Is(err, ErrMoveNotLearnable) {
		t.Fatalf("err = %v, want ErrMoveNotLearnable", err)
	}
}

func TestCreateBattleRejectsUnknownMove(t *testing.T) {
	repo := newMockRepo(testSpecies()...)
	team := humanTeam()
	team.Animals[0].Moves = []string{"Moonbeam"}

	_, err := CreateBattle(repo, testConfig(), game.BattleTrainer, "ABCD1234", []TeamRequest{team, aiTeam()})
	if !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("err = %v, want ErrUnknownMove", err)
	}
}

func TestCreateOpenBattleWaitsForOpponent(t *testing.T) {
	repo := newMockRepo(testSpecies()...)
	cfg := testConfig()

	b, err := CreateOpenBattle(repo, cfg, game.BattleTrainer, "ABCD1234", humanTeam())
	if err != nil {
		t.Fatalf("CreateOpenBattle: %v", err)
	}
	if b.State != game.BattleWaiting {
		t.Fatalf("state = %s, want waiting", b.State)
	}
	if len(b.Participants) != 1 {
		t.Fatalf("participants = %d, want 1", len(b.Participants))
	}
	// Nothing to time out until the battle actually starts.
	if !b.ActionDeadline.IsZero() {
		t.Fatalf("waiting battle has an armed deadline")
	}
}

func TestJoinBattleStartsWaitingBattle(t *testing.T) {
	repo := newMockRepo(testSpecies()...)
	cfg := testConfig()
	if _, err := CreateOpenBattle(repo, cfg, game.BattleTrainer, "ABCD1234", humanTeam()); err != nil {
		t.Fatalf("CreateOpenBattle: %v", err)
	}

	team := aiTeam()
	team.TamerName = "Bruno"
	team.IsAI = false
	b, err := JoinBattle(repo, cfg, "ABCD1234", team)
	if err != nil {
		t.Fatalf("JoinBattle: %v", err)
	}
	if b.State != game.BattleInProgress {
		t.Fatalf("state = %s, want in_progress after join", b.State)
	}
	if len(b.Participants) != 2 || b.Participants[1].Name != "Bruno" {
		t.Fatalf("participants = %+v", b.Participants)
	}
	if b.InitialOrder == "" {
		t.Fatalf("initial strike order not stamped on join")
	}
	if b.ActionDeadline.IsZero() {
		t.Fatalf("action deadline not armed on join")
	}

	// A started battle cannot be joined again.
	if _, err := JoinBattle(repo, cfg, "ABCD1234", team); !errors.Is(err, ErrBattleNotJoinable) {
		t.Fatalf("second join: err = %v, want ErrBattleNotJoinable", err)
	}
}

func TestJoinBattleUnknownCode(t *testing.T) {
	repo := newMockRepo(testSpecies()...)
	if _, err := JoinBattle(repo, testConfig(), "NOPE0000", humanTeam()); !errors.Is(err, ErrBattleNotFound) {
		t.Fatalf("err = %v, want ErrBattleNotFound", err)
	}
}
