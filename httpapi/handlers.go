package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/dimfu/bracketeer/bracket"
	"github.com/dimfu/bracketeer/models"
	"github.com/go-chi/chi/v5"
)

// TournamentStore is the persistence the tournament routes need.
type TournamentStore interface {
	CreateTournament(name string, slots int) (*models.Tournament, *bracket.Topology, error)
	GetTournament(id string) (*models.Tournament, []bracket.Match, error)
	TournamentTree(id string) (*models.Tournament, *bracket.Tree, error)
	SetMatchPayload(tournamentID string, matchID int, payload string) error
	GetMatchPayload(tournamentID string, matchID int) (string, error)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, bracket.ErrInvalidSlotCount),
		errors.Is(err, bracket.ErrPlacementOutOfRange),
		errors.Is(err, bracket.ErrInvalidDirection):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrTournamentNotFound),
		errors.Is(err, models.ErrPayloadNotFound),
		errors.Is(err, bracket.ErrMatchNotFound):
		status = http.StatusNotFound
	default:
		log.Println(err)
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

func intParam(r *http.Request, name string, sentinel error) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, errors.Join(sentinel, err)
	}
	return v, nil
}

func writeTree(w http.ResponseWriter, tree *bracket.Tree) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	tree.Print(w)
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func GetTopology(w http.ResponseWriter, r *http.Request) {
	slots, err := intParam(r, "slots", bracket.ErrInvalidSlotCount)
	if err != nil {
		writeError(w, err)
		return
	}

	topo, err := bracket.BuildTopology(slots)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopology(topo))
}

func GetNextPosition(w http.ResponseWriter, r *http.Request) {
	slots, err := intParam(r, "slots", bracket.ErrInvalidSlotCount)
	if err != nil {
		writeError(w, err)
		return
	}
	place, err := intParam(r, "place", bracket.ErrPlacementOutOfRange)
	if err != nil {
		writeError(w, err)
		return
	}

	direction := r.URL.Query().Get("direction")
	if direction == "" {
		direction = bracket.Winner.String()
	}
	dir, err := bracket.ParseDirection(strings.ToLower(direction))
	if err != nil {
		writeError(w, err)
		return
	}

	router, err := bracket.NewRouter(slots, nil)
	if err != nil {
		writeError(w, err)
		return
	}

	next, ok, err := router.NextPosition(place, dir)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := nextJSON{Place: place, Direction: dir.String()}
	if ok {
		resp.Next = &next
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetTopologyTree prints the winner-path tree of a topology, or the subtree
// under ?match= when given.
func GetTopologyTree(w http.ResponseWriter, r *http.Request) {
	slots, err := intParam(r, "slots", bracket.ErrInvalidSlotCount)
	if err != nil {
		writeError(w, err)
		return
	}

	topo, err := bracket.BuildTopology(slots)
	if err != nil {
		writeError(w, err)
		return
	}
	tree := topo.Tree()

	if match := r.URL.Query().Get("match"); match != "" {
		id, err := strconv.Atoi(match)
		if err != nil {
			writeError(w, errors.Join(bracket.ErrMatchNotFound, err))
			return
		}
		node, err := tree.Search(id)
		if err != nil {
			writeError(w, err)
			return
		}
		tree = bracket.NewTree(node)
	}
	writeTree(w, tree)
}

func CreateTournament(store TournamentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTournamentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if req.Name == "" {
			req.Name = "New Tournament"
		}

		t, topo, err := store.CreateTournament(req.Name, req.Slots)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, tournamentJSON{
			ID:        t.ID,
			Name:      t.Name,
			Slots:     t.Slots,
			CreatedAt: t.Created_At,
			Matches:   toMatches(topo.Matches()),
		})
	}
}

func GetTournament(store TournamentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, matches, err := store.GetTournament(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tournamentJSON{
			ID:        t.ID,
			Name:      t.Name,
			Slots:     t.Slots,
			CreatedAt: t.Created_At,
			Matches:   toMatches(matches),
		})
	}
}

func GetTournamentTree(store TournamentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, tree, err := store.TournamentTree(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeTree(w, tree)
	}
}

func SetMatchPayload(store TournamentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID, err := intParam(r, "match", bracket.ErrMatchNotFound)
		if err != nil {
			writeError(w, err)
			return
		}

		var req payloadJSON
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		id := chi.URLParam(r, "id")
		if err := store.SetMatchPayload(id, matchID, req.Payload); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, payloadJSON{Match: matchID, Payload: req.Payload})
	}
}

func GetMatchPayload(store TournamentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID, err := intParam(r, "match", bracket.ErrMatchNotFound)
		if err != nil {
			writeError(w, err)
			return
		}

		payload, err := store.GetMatchPayload(chi.URLParam(r, "id"), matchID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, payloadJSON{Match: matchID, Payload: payload})
	}
}
