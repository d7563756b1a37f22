package domain

// RewardCycle is the number of paid drinks that earn one free reward.
// Claiming a reward consumes a full cycle of paid drinks from future
// counting.
const RewardCycle = 5

type RewardState string

const (
	// StateProgress covers everything that is neither upcoming nor
	// ready, including a brand-new customer and a customer who just
	// claimed.
	StateProgress RewardState = "progress"
	// StateUpcoming means exactly one paid drink away from a reward.
	StateUpcoming RewardState = "upcoming"
	// StateReady means a full unclaimed cycle has been accumulated.
	StateReady RewardState = "ready"
)

// RewardStatus is a pure derivation from the ledger. It carries no
// hidden state: recomputing it from the same ledger always yields the
// same value.
type RewardStatus struct {
	EffectivePaidDrinks int
	Progress            int
	DrinksUntilReward   int
	State               RewardState
}

// ComputeRewardStatus derives a customer's position in the reward
// cycle from the two ledger-derived counters.
//
// Effective paid drinks are the paid drinks not yet spent covering a
// past claim. The raw value is clamped at zero before the modulo so an
// over-redeemed ledger never produces a negative remainder.
func ComputeRewardStatus(paidDrinks, rewardsRedeemed int) RewardStatus {
	effective := paidDrinks - RewardCycle*rewardsRedeemed
	if effective < 0 {
		effective = 0
	}

	progress := effective % RewardCycle

	drinksUntil := RewardCycle - progress
	if progress == 0 && effective > 0 {
		drinksUntil = 0
	}

	state := StateProgress
	switch {
	case effective > 0 && progress == 0:
		state = StateReady
	case drinksUntil == 1:
		state = StateUpcoming
	}

	return RewardStatus{
		EffectivePaidDrinks: effective,
		Progress:            progress,
		DrinksUntilReward:   drinksUntil,
		State:               state,
	}
}
