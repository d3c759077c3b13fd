package nba

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:   srv.URL,
		Timeout:   5 * time.Second,
		UserAgent: "test",
	}, zerolog.Nop())
}

// Column order in the fixture deliberately differs from struct field order;
// rows are decoded by header name.
const gamelogFixture = `{
  "resultSets": [{
    "name": "PlayerGameLog",
    "headers": ["SEASON_ID","Player_ID","Game_ID","GAME_DATE","MATCHUP","WL","MIN","FGM","FGA","FG_PCT","FG3M","FG3A","FG3_PCT","FTM","FTA","FT_PCT","OREB","DREB","REB","AST","STL","BLK","TOV","PF","PTS","PLUS_MINUS","VIDEO_AVAILABLE"],
    "rowSet": [
      ["22023",201939,"0022301195","APR 09, 2024","GSW vs. LAL","W","34",10,21,0.476,6,12,0.5,7,7,1.0,0,5,5,8,1,0,2,2,33,7,1]
    ]
  }]
}`

func TestPlayerGameLog(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/playergamelog", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "201939", q.Get("PlayerID"))
		assert.Equal(t, "2023-24", q.Get("Season"))
		assert.Equal(t, "Regular Season", q.Get("SeasonType"))
		w.Write([]byte(gamelogFixture))
	})

	log, err := c.PlayerGameLog(context.Background(), "201939", "2023-24")
	require.NoError(t, err)
	require.Len(t, log, 1)

	g := log[0]
	assert.Equal(t, "0022301195", g.GameID)
	assert.Equal(t, "APR 09, 2024", g.Date)
	assert.Equal(t, "GSW vs. LAL", g.Matchup)
	assert.Equal(t, "W", g.WinLoss)
	assert.Equal(t, 34.0, g.Minutes) // MIN served as a string in this fixture
	assert.Equal(t, 33.0, g.Points)
	assert.Equal(t, 5.0, g.Rebounds)
	assert.Equal(t, 8.0, g.Assists)
	assert.Equal(t, 6.0, g.ThreesMade)
	assert.Equal(t, 0.5, g.ThreesPct)
	assert.Equal(t, 7.0, g.PlusMinus)
	assert.True(t, g.Home())
}

func TestPlayerGameLog_EmptySeason(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultSets":[{"name":"PlayerGameLog","headers":["Game_ID"],"rowSet":[]}]}`))
	})

	// Zero games played is a valid response, not an error.
	log, err := c.PlayerGameLog(context.Background(), "1", "2023-24")
	require.NoError(t, err)
	assert.Empty(t, log)
}

func TestPlayerGameLog_HTTPError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	})

	_, err := c.PlayerGameLog(context.Background(), "1", "2023-24")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}

func TestAllPlayers(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/commonallplayers", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("IsOnlyCurrentSeason"))
		w.Write([]byte(`{"resultSets":[{
			"name":"CommonAllPlayers",
			"headers":["PERSON_ID","DISPLAY_LAST_COMMA_FIRST","DISPLAY_FIRST_LAST","ROSTERSTATUS","FROM_YEAR","TO_YEAR","PLAYERCODE","TEAM_ID","TEAM_CITY","TEAM_NAME","TEAM_ABBREVIATION"],
			"rowSet":[
				[201939,"Curry, Stephen","Stephen Curry",1,"2009","2025","stephen_curry",1610612744,"Golden State","Warriors","GSW"],
				[76001,"Old, Player","Player Old",0,"1970","1975","player_old",0,"","",null]
			]
		}]}`))
	})

	players, err := c.AllPlayers(context.Background(), "2023-24")
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, "201939", players[0].ID)
	assert.Equal(t, "Stephen Curry", players[0].FullName)
	assert.Equal(t, "GSW", players[0].Team)

	// Inactive players have a null team cell.
	assert.Equal(t, "76001", players[1].ID)
	assert.Empty(t, players[1].Team)
}
