package roster

import (
	"strings"

	"github.com/courtside/nbametrics/internal/model"
)

// nbaTeams is the canonical franchise table. Abbreviations are unique.
var nbaTeams = []model.TeamIdentity{
	{Abbreviation: "ATL", FullName: "Atlanta Hawks", Nickname: "Hawks"},
	{Abbreviation: "BOS", FullName: "Boston Celtics", Nickname: "Celtics"},
	{Abbreviation: "BKN", FullName: "Brooklyn Nets", Nickname: "Nets"},
	{Abbreviation: "CHA", FullName: "Charlotte Hornets", Nickname: "Hornets"},
	{Abbreviation: "CHI", FullName: "Chicago Bulls", Nickname: "Bulls"},
	{Abbreviation: "CLE", FullName: "Cleveland Cavaliers", Nickname: "Cavaliers"},
	{Abbreviation: "DAL", FullName: "Dallas Mavericks", Nickname: "Mavericks"},
	{Abbreviation: "DEN", FullName: "Denver Nuggets", Nickname: "Nuggets"},
	{Abbreviation: "DET", FullName: "Detroit Pistons", Nickname: "Pistons"},
	{Abbreviation: "GSW", FullName: "Golden State Warriors", Nickname: "Warriors"},
	{Abbreviation: "HOU", FullName: "Houston Rockets", Nickname: "Rockets"},
	{Abbreviation: "IND", FullName: "Indiana Pacers", Nickname: "Pacers"},
	{Abbreviation: "LAC", FullName: "Los Angeles Clippers", Nickname: "Clippers"},
	{Abbreviation: "LAL", FullName: "Los Angeles Lakers", Nickname: "Lakers"},
	{Abbreviation: "MEM", FullName: "Memphis Grizzlies", Nickname: "Grizzlies"},
	{Abbreviation: "MIA", FullName: "Miami Heat", Nickname: "Heat"},
	{Abbreviation: "MIL", FullName: "Milwaukee Bucks", Nickname: "Bucks"},
	{Abbreviation: "MIN", FullName: "Minnesota Timberwolves", Nickname: "Timberwolves"},
	{Abbreviation: "NOP", FullName: "New Orleans Pelicans", Nickname: "Pelicans"},
	{Abbreviation: "NYK", FullName: "New York Knicks", Nickname: "Knicks"},
	{Abbreviation: "OKC", FullName: "Oklahoma City Thunder", Nickname: "Thunder"},
	{Abbreviation: "ORL", FullName: "Orlando Magic", Nickname: "Magic"},
	{Abbreviation: "PHI", FullName: "Philadelphia 76ers", Nickname: "76ers"},
	{Abbreviation: "PHX", FullName: "Phoenix Suns", Nickname: "Suns"},
	{Abbreviation: "POR", FullName: "Portland Trail Blazers", Nickname: "Trail Blazers"},
	{Abbreviation: "SAC", FullName: "Sacramento Kings", Nickname: "Kings"},
	{Abbreviation: "SAS", FullName: "San Antonio Spurs", Nickname: "Spurs"},
	{Abbreviation: "TOR", FullName: "Toronto Raptors", Nickname: "Raptors"},
	{Abbreviation: "UTA", FullName: "Utah Jazz", Nickname: "Jazz"},
	{Abbreviation: "WAS", FullName: "Washington Wizards", Nickname: "Wizards"},
}

// Teams returns a copy of the canonical franchise table.
func Teams() []model.TeamIdentity {
	out := make([]model.TeamIdentity, len(nbaTeams))
	copy(out, nbaTeams)
	return out
}

// teamStage is one matcher in the resolution cascade. It returns every team
// the input text could refer to; an empty result means "try the next stage".
type teamStage func(text string, teams []model.TeamIdentity) []model.TeamIdentity

// matchAbbreviation matches exact abbreviations. Only attempted for inputs of
// at most 3 characters; abbreviations are unique so this never multi-matches.
func matchAbbreviation(text string, teams []model.TeamIdentity) []model.TeamIdentity {
	if len(text) > 3 {
		return nil
	}
	abbr := strings.ToUpper(text)
	for _, t := range teams {
		if t.Abbreviation == abbr {
			return []model.TeamIdentity{t}
		}
	}
	return nil
}

// matchFullName matches the full franchise name, case-insensitively. Full
// names run before nicknames because they are strictly more specific: a
// nickname like "Lakers" is a substring of a full name and a nickname-first
// cascade would short-circuit prematurely.
func matchFullName(text string, teams []model.TeamIdentity) []model.TeamIdentity {
	var out []model.TeamIdentity
	for _, t := range teams {
		if strings.EqualFold(t.FullName, text) {
			out = append(out, t)
		}
	}
	return out
}

// matchNickname matches the text as a case-insensitive substring of the
// nickname. When that yields several candidates, an exact case-insensitive
// nickname match narrows the set before ambiguity is reported.
func matchNickname(text string, teams []model.TeamIdentity) []model.TeamIdentity {
	needle := strings.ToLower(text)
	var out []model.TeamIdentity
	for _, t := range teams {
		if strings.Contains(strings.ToLower(t.Nickname), needle) {
			out = append(out, t)
		}
	}
	if len(out) > 1 {
		var exact []model.TeamIdentity
		for _, t := range out {
			if strings.EqualFold(t.Nickname, text) {
				exact = append(exact, t)
			}
		}
		if len(exact) > 0 {
			out = exact
		}
	}
	return out
}

// TeamResolver resolves free-text team identifiers (abbreviation, full name,
// or nickname) through an ordered stage cascade. The first stage producing a
// non-empty candidate set wins.
type TeamResolver struct {
	teams  []model.TeamIdentity
	stages []teamStage
}

// NewTeamResolver builds a resolver over the given franchise table.
func NewTeamResolver(teams []model.TeamIdentity) *TeamResolver {
	return &TeamResolver{
		teams:  teams,
		stages: []teamStage{matchAbbreviation, matchFullName, matchNickname},
	}
}

// DefaultTeamResolver resolves against the canonical NBA franchise table.
func DefaultTeamResolver() *TeamResolver {
	return NewTeamResolver(nbaTeams)
}

// Resolve maps text to exactly one team.
func (r *TeamResolver) Resolve(text string) (model.TeamIdentity, error) {
	var candidates []model.TeamIdentity
	for _, stage := range r.stages {
		if candidates = stage(text, r.teams); len(candidates) > 0 {
			break
		}
	}
	switch len(candidates) {
	case 0:
		return model.TeamIdentity{}, &NotFoundError{Kind: "team", Query: text}
	case 1:
		return candidates[0], nil
	default:
		return model.TeamIdentity{}, &AmbiguousTeamError{Query: text, Candidates: candidates}
	}
}
