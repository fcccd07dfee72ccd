// Package settlement turns a list of shared expenses into a small set of
// peer-to-peer transfers that clears everyone's net balance.
//
// All arithmetic is integer cents. The matching is a greedy heuristic: it
// produces at most min(debtors, creditors) transfers, which is cheap and
// deterministic but not guaranteed to be the theoretical minimum.
package settlement

import "github.com/jmulder/weekend-planner/backend/internal/domain"

// Transfer is one proposed payment from a debtor to a creditor.
type Transfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"` // cents, always > 0
}

// Compute resolves the expenses into transfers. participantIDs seeds a zero
// balance for every current participant; payer or split ids outside that list
// still accumulate balance (expenses may reference participants that have
// since left). Balances within ±1 cent of zero count as settled — this
// absorbs the per-expense rounding drift of integer shares.
//
// Determinism: balances are discovered in participantIDs order first, then
// unseen expense ids in expense order, and the debtor/creditor partitions
// inherit that order. For a fixed input order the output is fixed.
//
// Degenerate inputs (no participants, no expenses, everyone settled) yield an
// empty result; Compute never fails.
func Compute(expenses []domain.Expense, participantIDs []string) []Transfer {
	balances := make(map[string]int64, len(participantIDs))
	order := make([]string, 0, len(participantIDs))
	touch := func(id string) {
		if _, ok := balances[id]; !ok {
			balances[id] = 0
			order = append(order, id)
		}
	}
	for _, id := range participantIDs {
		touch(id)
	}

	for _, e := range expenses {
		group := e.SplitBetween
		if len(group) == 0 {
			// Empty split set means "everyone".
			group = participantIDs
		}
		if len(group) == 0 {
			continue // nobody to divide across
		}

		share := roundedShare(e.Amount, int64(len(group)))

		touch(e.ParticipantID)
		balances[e.ParticipantID] += e.Amount
		for _, id := range group {
			touch(id)
			balances[id] -= share // the payer is debited too when in the group
		}
	}

	type party struct {
		id          string
		outstanding int64
	}
	var debtors, creditors []party
	for _, id := range order {
		switch b := balances[id]; {
		case b < -1:
			debtors = append(debtors, party{id, -b})
		case b > 1:
			creditors = append(creditors, party{id, b})
		}
	}

	// Greedy head-to-head matching: settle the first remaining debtor
	// against the first remaining creditor, advancing whichever side drops
	// below 2 cents outstanding.
	var transfers []Transfer
	di, ci := 0, 0
	for di < len(debtors) && ci < len(creditors) {
		d, c := &debtors[di], &creditors[ci]

		amount := min(d.outstanding, c.outstanding)
		if amount > 0 {
			transfers = append(transfers, Transfer{From: d.id, To: c.id, Amount: amount})
		}
		d.outstanding -= amount
		c.outstanding -= amount

		if d.outstanding < 2 {
			di++
		}
		if c.outstanding < 2 {
			ci++
		}
	}

	return transfers
}

// roundedShare divides amount by n, rounding half up to the nearest cent.
// Amounts are non-negative, so half-up matches the round-to-nearest the
// expense split was specified with.
func roundedShare(amount, n int64) int64 {
	return (amount + n/2) / n
}
