package roster

import (
	"strings"

	"github.com/courtside/nbametrics/internal/model"
)

// NameResolver resolves free-text player names against a player directory.
// Matching is exact full-name equality (case-insensitive, the same rule the
// roster source applies); partial and fuzzy matching are intentionally not
// supported.
type NameResolver struct {
	players []model.PlayerIdentity
}

// NewNameResolver builds a resolver over the given directory.
func NewNameResolver(players []model.PlayerIdentity) *NameResolver {
	return &NameResolver{players: players}
}

// Resolve maps name to exactly one player.
func (r *NameResolver) Resolve(name string) (model.PlayerIdentity, error) {
	var matches []model.PlayerIdentity
	for _, p := range r.players {
		if strings.EqualFold(p.FullName, name) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return model.PlayerIdentity{}, &NotFoundError{Kind: "player", Query: name}
	case 1:
		return matches[0], nil
	default:
		return model.PlayerIdentity{}, &AmbiguousPlayerError{Query: name, Candidates: matches}
	}
}
