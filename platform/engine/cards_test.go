package engine

import (
	"errors"
	"testing"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/store"
)

func fixPick(e *Engine, index int) {
	e.pick = func(n int) int { return index }
}

func runCard(t *testing.T, e *Engine, game *models.Game, playerID string, card models.Card) *models.CardResult {
	t.Helper()
	player := getPlayer(t, e, playerID)
	result := &models.CardResult{Card: card}
	if err := e.executeCard(e.store, game, player, card, result); err != nil {
		t.Fatalf("executeCard() failed: %v", err)
	}
	return result
}

func TestDrawRandomCard(t *testing.T) {
	e := newTestEngine(t)
	fixPick(e, 0)

	card, err := e.DrawRandomCard(models.CardChance)
	if err != nil {
		t.Fatalf("DrawRandomCard() failed: %v", err)
	}
	if card.Type != models.CardChance {
		t.Fatalf("card type = %q, want chance", card.Type)
	}

	card, err = e.DrawRandomCard(models.CardCommunityChest)
	if err != nil {
		t.Fatalf("DrawRandomCard() failed: %v", err)
	}
	if card.Type != models.CardCommunityChest {
		t.Fatalf("card type = %q, want community_chest", card.Type)
	}

	if _, err := e.DrawRandomCard("bogus"); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("DrawRandomCard(bogus) error = %v, want ErrUnknownAction", err)
	}
}

func TestExecuteCardCollectMoney(t *testing.T) {
	e := newTestEngine(t)
	game, players := startedGame(t, e, "alice", "bob")

	result := runCard(t, e, game, players[0].Id, models.Card{
		ActionType: models.ActionCollectMoney,
		Amount:     50,
	})
	if result.MoneyChange != 50 {
		t.Fatalf("money change = %d, want 50", result.MoneyChange)
	}
	if money := getPlayer(t, e, players[0].Id).Money; money != models.StartingMoney+50 {
		t.Fatalf("money = %d, want %d", money, models.StartingMoney+50)
	}
}

func TestExecuteCardPayMoney(t *testing.T) {
	t.Run("paid in full", func(t *testing.T) {
		e := newTestEngine(t)
		game, players := startedGame(t, e, "alice", "bob")

		result := runCard(t, e, game, players[0].Id, models.Card{
			ActionType: models.ActionPayMoney,
			Amount:     100,
		})
		if result.MoneyChange != -100 || result.Bankrupt {
			t.Fatalf("result = %+v, want -100 solvent", result)
		}
		if money := getPlayer(t, e, players[0].Id).Money; money != models.StartingMoney-100 {
			t.Fatalf("money = %d, want %d", money, models.StartingMoney-100)
		}
	})

	t.Run("partial drains to zero", func(t *testing.T) {
		e := newTestEngine(t)
		game, players := startedGame(t, e, "alice", "bob")
		setMoney(t, e, players[0].Id, 30)

		result := runCard(t, e, game, players[0].Id, models.Card{
			ActionType: models.ActionPayMoney,
			Amount:     100,
		})
		if result.MoneyChange != -30 || !result.Bankrupt {
			t.Fatalf("result = %+v, want -30 and bankrupt", result)
		}
		if money := getPlayer(t, e, players[0].Id).Money; money != 0 {
			t.Fatalf("money = %d, want 0", money)
		}
	})
}

func TestExecuteCardMoveToPosition(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		e := newTestEngine(t)
		game, players := startedGame(t, e, "alice", "bob")
		setPosition(t, e, players[0].Id, 5)

		result := runCard(t, e, game, players[0].Id, models.Card{
			ActionType: models.ActionMoveToPosition,
			Position:   24,
		})
		if result.NewPosition != 24 || result.PassedGo {
			t.Fatalf("result = %+v, want position 24 without GO", result)
		}
		if money := getPlayer(t, e, players[0].Id).Money; money != models.StartingMoney {
			t.Fatalf("money = %d, want unchanged", money)
		}
	})

	t.Run("backwards passes GO", func(t *testing.T) {
		e := newTestEngine(t)
		game, players := startedGame(t, e, "alice", "bob")
		setPosition(t, e, players[0].Id, 30)

		result := runCard(t, e, game, players[0].Id, models.Card{
			ActionType: models.ActionMoveToPosition,
			Position:   5,
		})
		if result.NewPosition != 5 || !result.PassedGo {
			t.Fatalf("result = %+v, want position 5 with GO", result)
		}
		if money := getPlayer(t, e, players[0].Id).Money; money != models.StartingMoney+models.GoBonus {
			t.Fatalf("money = %d, want %d", money, models.StartingMoney+models.GoBonus)
		}
	})

	t.Run("jail never pays GO", func(t *testing.T) {
		e := newTestEngine(t)
		game, players := startedGame(t, e, "alice", "bob")
		setPosition(t, e, players[0].Id, 30)

		result := runCard(t, e, game, players[0].Id, models.Card{
			ActionType: models.ActionMoveToPosition,
			Position:   models.JailPosition,
		})
		if !result.WentToJail || result.PassedGo {
			t.Fatalf("result = %+v, want jailed without GO", result)
		}
		player := getPlayer(t, e, players[0].Id)
		if !player.Jail || player.Position != models.JailPosition {
			t.Fatalf("player = jail=%v pos=%d, want jailed at %d", player.Jail, player.Position, models.JailPosition)
		}
		if player.Money != models.StartingMoney {
			t.Fatalf("money = %d, want unchanged", player.Money)
		}
	})
}

func TestExecuteCardCollectFromPlayers(t *testing.T) {
	e := newTestEngine(t)
	game, players := startedGame(t, e, "alice", "bob", "carol")
	setMoney(t, e, players[2].Id, 30)

	result := runCard(t, e, game, players[0].Id, models.Card{
		ActionType: models.ActionCollectFromPlayers,
		Amount:     100,
	})
	// bob pays in full, carol is drained to zero and goes under.
	if result.MoneyChange != 130 {
		t.Fatalf("collected = %d, want 130", result.MoneyChange)
	}
	if money := getPlayer(t, e, players[0].Id).Money; money != models.StartingMoney+130 {
		t.Fatalf("collector money = %d, want %d", money, models.StartingMoney+130)
	}
	if money := getPlayer(t, e, players[1].Id).Money; money != models.StartingMoney-100 {
		t.Fatalf("solvent payer money = %d, want %d", money, models.StartingMoney-100)
	}
	carol := getPlayer(t, e, players[2].Id)
	if carol.Money != 0 || !carol.Bankrupt {
		t.Fatalf("drained payer = money=%d bankrupt=%v, want 0 and bankrupt", carol.Money, carol.Bankrupt)
	}
}

func TestExecuteCardPayPerHouse(t *testing.T) {
	e := newTestEngine(t)
	game, players := startedGame(t, e, "alice", "bob")
	first := giveProperty(t, e, game.Id, players[0].Id, 1)
	second := giveProperty(t, e, game.Id, players[0].Id, 3)
	setBuildings(t, e, first, 3, 0)
	setBuildings(t, e, second, 0, 1)

	result := runCard(t, e, game, players[0].Id, models.Card{
		ActionType:     models.ActionPayPerHouse,
		PerHouseAmount: 25,
		PerHotelAmount: 100,
	})
	if result.MoneyChange != -175 {
		t.Fatalf("money change = %d, want -175 (3 houses, 1 hotel)", result.MoneyChange)
	}
	if money := getPlayer(t, e, players[0].Id).Money; money != models.StartingMoney-175 {
		t.Fatalf("money = %d, want %d", money, models.StartingMoney-175)
	}
}

func TestExecuteCardUnknownAction(t *testing.T) {
	e := newTestEngine(t)
	game, players := startedGame(t, e, "alice", "bob")
	player := getPlayer(t, e, players[0].Id)

	err := e.executeCard(e.store, game, player, models.Card{ActionType: "teleport"}, &models.CardResult{})
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("executeCard() error = %v, want ErrUnknownAction", err)
	}
}

func TestDrawCardAppliesToCurrentPlayer(t *testing.T) {
	e := newTestEngine(t)
	game, players := startedGame(t, e, "alice", "bob")
	fixPick(e, 4) // Bank Dividend: collect $50

	result, err := e.DrawCard(game.Id, models.CardChance)
	if err != nil {
		t.Fatalf("DrawCard() failed: %v", err)
	}
	if result.Card.ActionType != models.ActionCollectMoney || result.MoneyChange != 50 {
		t.Fatalf("result = %+v, want collect_money for 50", result)
	}
	if money := getPlayer(t, e, players[0].Id).Money; money != models.StartingMoney+50 {
		t.Fatalf("current player money = %d, want %d", money, models.StartingMoney+50)
	}
	if money := getPlayer(t, e, players[1].Id).Money; money != models.StartingMoney {
		t.Fatalf("bystander money = %d, want untouched", money)
	}
}

func TestDrawCardGuards(t *testing.T) {
	t.Run("unknown deck", func(t *testing.T) {
		e := newTestEngine(t)
		game, _ := startedGame(t, e, "alice", "bob")
		if _, err := e.DrawCard(game.Id, "bogus"); !errors.Is(err, ErrUnknownAction) {
			t.Fatalf("DrawCard(bogus) error = %v, want ErrUnknownAction", err)
		}
	})

	t.Run("waiting game", func(t *testing.T) {
		e := newTestEngine(t)
		game, err := e.CreateGame()
		if err != nil {
			t.Fatalf("CreateGame() failed: %v", err)
		}
		fixPick(e, 0)
		if _, err := e.DrawCard(game.Id, models.CardChance); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("DrawCard() on waiting game error = %v, want ErrInvalidState", err)
		}
	})

	t.Run("missing game", func(t *testing.T) {
		e := newTestEngine(t)
		fixPick(e, 0)
		if _, err := e.DrawCard("nope", models.CardChance); !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("DrawCard() on missing game error = %v, want ErrNotFound", err)
		}
	})
}
