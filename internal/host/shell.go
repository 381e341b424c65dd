package host

import "sync"

// ShellState holds the "Write API restricted to shell-owned concerns"
// spec.md §6 names but explicitly keeps out of THE CORE: commit_choice,
// buy_shop_item, reroll_shop_items, escape_risk, and miniboss damage
// are "thin pass-throughs to the external 8-phase shell". The core's
// eight-phase meta-run (shop, risk, boss encounters between combat
// sections) is, by spec.md §1's own scoping, not a simulation-core
// concern, so this shell tracks only the minimal bookkeeping a host
// needs to acknowledge those calls without inventing the meta-game
// spec.md deliberately leaves unspecified.
type ShellState struct {
	mu sync.Mutex

	lastChoiceID    uint32
	shopPurchases   []uint32
	rerollCount     uint32
	riskEscaped     bool
	minibossDamage  uint32
}

// CommitChoice records a shop/reward choice id.
func (s *ShellState) CommitChoice(id uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastChoiceID = id
}

// BuyShopItem records a purchase by shop slot index.
func (s *ShellState) BuyShopItem(index uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shopPurchases = append(s.shopPurchases, index)
}

// RerollShopItems increments the reroll counter.
func (s *ShellState) RerollShopItems() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rerollCount++
	return s.rerollCount
}

// EscapeRisk marks the current risk encounter as escaped.
func (s *ShellState) EscapeRisk() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.riskEscaped = true
}

// ApplyMinibossDamage accumulates damage dealt to a miniboss outside
// THE CORE's own wolf/player combat model.
func (s *ShellState) ApplyMinibossDamage(amount uint32) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.minibossDamage += amount
	return s.minibossDamage
}

// ShellStatus is a plain, copyable read of ShellState's bookkeeping,
// for the reference shell's status endpoint.
type ShellStatus struct {
	LastChoiceID   uint32
	ShopPurchases  []uint32
	RerollCount    uint32
	RiskEscaped    bool
	MinibossDamage uint32
}

// Snapshot returns a copy of the current bookkeeping.
func (s *ShellState) Snapshot() ShellStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	purchases := make([]uint32, len(s.shopPurchases))
	copy(purchases, s.shopPurchases)
	return ShellStatus{
		LastChoiceID:   s.lastChoiceID,
		ShopPurchases:  purchases,
		RerollCount:    s.rerollCount,
		RiskEscaped:    s.riskEscaped,
		MinibossDamage: s.minibossDamage,
	}
}
