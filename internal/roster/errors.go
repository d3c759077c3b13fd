// Package roster resolves free-text player and team identifiers to canonical
// identities. Resolution is exact-match only for players and a staged cascade
// for teams; fuzzy matching is deliberately out of scope.
package roster

import (
	"fmt"
	"strings"

	"github.com/courtside/nbametrics/internal/model"
)

// NotFoundError reports that no entity matched a resolution query.
type NotFoundError struct {
	Kind  string // "player" or "team"
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Query)
}

// AmbiguousPlayerError reports that more than one player matched a name.
// Candidates is the full match list so the caller can disambiguate.
type AmbiguousPlayerError struct {
	Query      string
	Candidates []model.PlayerIdentity
}

func (e *AmbiguousPlayerError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, p := range e.Candidates {
		if p.Team != "" {
			names[i] = fmt.Sprintf("%s (%s)", p.FullName, p.Team)
		} else {
			names[i] = p.FullName
		}
	}
	return fmt.Sprintf("multiple players found for %q: %s", e.Query, strings.Join(names, ", "))
}

// AmbiguousTeamError reports that more than one team survived the cascade.
// The message lists "full name (abbreviation)" pairs so the caller can retry
// with an abbreviation.
type AmbiguousTeamError struct {
	Query      string
	Candidates []model.TeamIdentity
}

func (e *AmbiguousTeamError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, t := range e.Candidates {
		names[i] = fmt.Sprintf("%s (%s)", t.FullName, t.Abbreviation)
	}
	return fmt.Sprintf("multiple teams found for %q: %s — use the team abbreviation instead",
		e.Query, strings.Join(names, ", "))
}
