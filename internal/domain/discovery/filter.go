package discovery

import (
	"strings"

	"github.com/snapmarket/snapmarket-api/internal/dto"
)

// Filter narrows an already-fetched listing by free-text query. A card
// matches when the query is a case-insensitive substring of the display
// name, the specialty, or the city. The empty query matches everything.
// Availability is the store's concern; this never re-fetches.
func Filter(cards []dto.PhotographerCardDTO, query string) []dto.PhotographerCardDTO {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return cards
	}

	out := make([]dto.PhotographerCardDTO, 0, len(cards))
	for _, card := range cards {
		if strings.Contains(strings.ToLower(card.FullName), q) ||
			strings.Contains(strings.ToLower(card.Specialty), q) ||
			strings.Contains(strings.ToLower(card.City), q) {
			out = append(out, card)
		}
	}
	return out
}
