package engine

import (
	"github.com/pendraco002/homeostasis-cards/internal/game"
)

// DrawCard moves the top card of the deck into the hand and returns it
// along with the next session state. An exhausted deck is refilled from the
// discard pile first, keeping the pile's accumulation order; there is no
// reshuffle. When both piles are empty the card is nil and the session
// comes back otherwise unchanged. The input session is never mutated.
func DrawCard(s *game.GameSession) (*game.GameSession, *game.Card) {
	if s == nil {
		return nil, nil
	}
	ns := s.Clone()

	if len(ns.Deck) == 0 && len(ns.DiscardPile) > 0 {
		ns.Deck = ns.DiscardPile
		ns.DiscardPile = nil
	}
	if len(ns.Deck) == 0 {
		return ns, nil
	}

	drawn := ns.Deck[0]
	ns.Deck = ns.Deck[1:]
	ns.Hand = append(ns.Hand, drawn)
	return ns, &drawn
}
