package engine

import (
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/store"
)

// PaymentStatus reports how a debit resolved. Affordability is checked
// before any write.
type PaymentStatus int

const (
	// PaidInFull means the balance covered the whole amount.
	PaidInFull PaymentStatus = iota
	// PaidPartial means the balance was drained to zero and the player is
	// now insolvent. Only possible when the charge allows partial payment.
	PaidPartial
	// Refused means insufficient funds with partial payment not allowed.
	// Nothing was written.
	Refused
)

type PaymentOutcome struct {
	Status    PaymentStatus
	Requested int
	Paid      int
	Balance   int
}

func addMoney(tx store.Store, player *models.Player, amount int) error {
	player.Money += amount
	return tx.UpdatePlayer(player)
}

// charge debits amount from the player. With allowPartial the player pays
// what they have, down to zero; otherwise a shortfall refuses the whole
// debit with ErrInsufficientFunds and no write happens.
func charge(tx store.Store, player *models.Player, amount int, allowPartial bool) (PaymentOutcome, error) {
	if amount <= 0 {
		return PaymentOutcome{Status: PaidInFull, Balance: player.Money}, nil
	}
	if player.Money < amount {
		if !allowPartial {
			return PaymentOutcome{Status: Refused, Requested: amount, Balance: player.Money},
				fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, amount, player.Money)
		}
		paid := player.Money
		player.Money = 0
		if err := tx.UpdatePlayer(player); err != nil {
			return PaymentOutcome{}, err
		}
		return PaymentOutcome{Status: PaidPartial, Requested: amount, Paid: paid}, nil
	}
	player.Money -= amount
	if err := tx.UpdatePlayer(player); err != nil {
		return PaymentOutcome{}, err
	}
	return PaymentOutcome{Status: PaidInFull, Requested: amount, Paid: amount, Balance: player.Money}, nil
}

func updatePosition(tx store.Store, player *models.Player, position int) error {
	player.Position = position
	return tx.UpdatePlayer(player)
}

func updateJailStatus(tx store.Store, player *models.Player, inJail bool) error {
	player.Jail = inJail
	return tx.UpdatePlayer(player)
}

func setFirstTurnComplete(tx store.Store, player *models.Player) error {
	if !player.FirstTurn {
		return nil
	}
	player.FirstTurn = false
	return tx.UpdatePlayer(player)
}
