package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dimfu/bracketeer/bracket"
	"github.com/dimfu/bracketeer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	tournaments map[string]*models.Tournament
	payloads    map[string]map[int]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tournaments: map[string]*models.Tournament{},
		payloads:    map[string]map[int]string{},
	}
}

func (f *fakeStore) CreateTournament(name string, slots int) (*models.Tournament, *bracket.Topology, error) {
	topo, err := bracket.BuildTopology(slots)
	if err != nil {
		return nil, nil, err
	}
	t := &models.Tournament{ID: fmt.Sprintf("t%d", len(f.tournaments)+1), Name: name, Slots: slots, Created_At: 1}
	f.tournaments[t.ID] = t
	return t, topo, nil
}

func (f *fakeStore) GetTournament(id string) (*models.Tournament, []bracket.Match, error) {
	t, ok := f.tournaments[id]
	if !ok {
		return nil, nil, models.ErrTournamentNotFound
	}
	topo, err := bracket.BuildTopology(t.Slots)
	if err != nil {
		return nil, nil, err
	}
	return t, topo.Matches(), nil
}

func (f *fakeStore) TournamentTree(id string) (*models.Tournament, *bracket.Tree, error) {
	t, ok := f.tournaments[id]
	if !ok {
		return nil, nil, models.ErrTournamentNotFound
	}
	topo, err := bracket.BuildTopology(t.Slots)
	if err != nil {
		return nil, nil, err
	}
	tree := topo.Tree()
	for matchID, payload := range f.payloads[id] {
		if n, err := tree.Search(matchID); err == nil {
			n.Payload = payload
		}
	}
	return t, tree, nil
}

func (f *fakeStore) SetMatchPayload(tournamentID string, matchID int, payload string) error {
	t, ok := f.tournaments[tournamentID]
	if !ok {
		return models.ErrTournamentNotFound
	}
	if matchID < 1 || matchID > 2*t.Slots-1 {
		return bracket.ErrMatchNotFound
	}
	if f.payloads[tournamentID] == nil {
		f.payloads[tournamentID] = map[int]string{}
	}
	f.payloads[tournamentID][matchID] = payload
	return nil
}

func (f *fakeStore) GetMatchPayload(tournamentID string, matchID int) (string, error) {
	p, ok := f.payloads[tournamentID][matchID]
	if !ok {
		return "", models.ErrPayloadNotFound
	}
	return p, nil
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(t, SetupRoutes(nil), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTopology(t *testing.T) {
	rec := do(t, SetupRoutes(nil), http.MethodGet, "/topologies/4", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got topologyJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 4, got.Slots)
	require.Len(t, got.Segments, 3)
	assert.Equal(t, "top", got.Segments[0].Segment)
	assert.Equal(t, []int{1, 2}, got.Segments[0].Rounds[0].Matches)
	assert.Equal(t, "bottom", got.Segments[1].Segment)
	assert.Len(t, got.Segments[1].Rounds, 2)
	require.Len(t, got.Matches, 7)

	last := got.Matches[6]
	assert.Equal(t, "champion", last.Segment)
	assert.Equal(t, "terminal", last.WinnerTo.Kind)
	assert.Nil(t, last.WinnerTo.Match)
	assert.Equal(t, "eliminated", last.LoserTo.Kind)

	first := got.Matches[0]
	require.NotNil(t, first.LoserTo.Match)
	assert.Equal(t, 4, *first.LoserTo.Match)
}

func TestGetTopologyErrors(t *testing.T) {
	paths := []string{
		"/topologies/6",
		"/topologies/abc",
		"/topologies/1",
		"/topologies/131072",
		"/topologies/4611686018427387904",
	}
	for _, path := range paths {
		rec := do(t, SetupRoutes(nil), http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestGetNextPosition(t *testing.T) {
	cases := []struct {
		path   string
		status int
		next   *int
	}{
		{"/topologies/8/next/6", http.StatusOK, intPtr(13)},
		{"/topologies/8/next/6?direction=winner", http.StatusOK, intPtr(13)},
		{"/topologies/8/next/4?direction=loser", http.StatusOK, intPtr(10)},
		{"/topologies/8/next/13?direction=loser", http.StatusOK, intPtr(14)},
		{"/topologies/8/next/14", http.StatusOK, nil},
		{"/topologies/8/next/9?direction=loser", http.StatusOK, nil},
		{"/topologies/8/next/15", http.StatusBadRequest, nil},
		{"/topologies/8/next/-1", http.StatusBadRequest, nil},
		{"/topologies/8/next/2?direction=draw", http.StatusBadRequest, nil},
		{"/topologies/6/next/2", http.StatusBadRequest, nil},
		{"/topologies/1073741824/next/0", http.StatusBadRequest, nil},
		{"/topologies/70368744177664/next/0", http.StatusBadRequest, nil},
		{"/topologies/4611686018427387904/next/0", http.StatusBadRequest, nil},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := do(t, SetupRoutes(nil), http.MethodGet, tc.path, "")
			require.Equal(t, tc.status, rec.Code)
			if tc.status != http.StatusOK {
				return
			}
			var got nextJSON
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tc.next, got.Next)
		})
	}
}

func TestTournamentRoutes(t *testing.T) {
	store := newFakeStore()
	h := SetupRoutes(store)

	rec := do(t, h, http.MethodPost, "/tournaments", `{"name":"Cup","slots":8}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created tournamentJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "Cup", created.Name)
	assert.Len(t, created.Matches, 15)

	rec = do(t, h, http.MethodGet, "/tournaments/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched tournamentJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&fetched))
	assert.Equal(t, created, fetched)

	rec = do(t, h, http.MethodGet, "/tournaments/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/tournaments", `{"slots":12}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/tournaments", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTopologyTree(t *testing.T) {
	rec := do(t, SetupRoutes(nil), http.MethodGet, "/topologies/2/tree", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "M:3 champion r2 m1\n  L:2 champion r1 m1\n    L:1 top r1 m1\n", rec.Body.String())

	rec = do(t, SetupRoutes(nil), http.MethodGet, "/topologies/8/tree?match=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "M:5 top r2 m1\n  L:1 top r1 m1\n  R:2 top r1 m1\n", rec.Body.String())

	for _, path := range []string{"/topologies/8/tree?match=99", "/topologies/8/tree?match=x"} {
		rec = do(t, SetupRoutes(nil), http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}

	rec = do(t, SetupRoutes(nil), http.MethodGet, "/topologies/6/tree", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchPayloadRoutes(t *testing.T) {
	store := newFakeStore()
	h := SetupRoutes(store)

	rec := do(t, h, http.MethodPost, "/tournaments", `{"name":"Cup","slots":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created tournamentJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	base := "/tournaments/" + created.ID

	rec = do(t, h, http.MethodGet, base+"/matches/1/payload", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPut, base+"/matches/1/payload", `{"payload":"alice vs bob"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, base+"/matches/1/payload", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got payloadJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, payloadJSON{Match: 1, Payload: "alice vs bob"}, got)

	rec = do(t, h, http.MethodGet, base+"/tree", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "M:3 champion r2 m1\n  L:2 champion r1 m1\n    L:1 top r1 m1 alice vs bob\n", rec.Body.String())

	cases := []struct {
		method, path, body string
		status             int
	}{
		{http.MethodPut, base + "/matches/4/payload", `{"payload":"x"}`, http.StatusNotFound},
		{http.MethodPut, base + "/matches/abc/payload", `{"payload":"x"}`, http.StatusNotFound},
		{http.MethodPut, base + "/matches/1/payload", `not json`, http.StatusBadRequest},
		{http.MethodPut, "/tournaments/nope/matches/1/payload", `{"payload":"x"}`, http.StatusNotFound},
		{http.MethodGet, "/tournaments/nope/tree", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		rec = do(t, h, tc.method, tc.path, tc.body)
		assert.Equal(t, tc.status, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func intPtr(v int) *int { return &v }
