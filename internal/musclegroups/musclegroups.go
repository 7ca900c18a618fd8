// Package musclegroups is the static muscle group reference list used by exercises.
package musclegroups

import (
	"net/http"
	"sort"

	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/pkg"
)

// None is the "nothing chosen" sentinel the pickers and forms use in place of a real id.
const None int64 = 222

type MuscleGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

var all = []MuscleGroup{
	{ID: 6, Name: "Abdominals"},
	{ID: 15, Name: "Biceps"},
	{ID: 1, Name: "Calves"},
	{ID: 18, Name: "Cardiovascular system"},
	{ID: 11, Name: "Chest"},
	{ID: 17, Name: "Forearms"},
	{ID: 14, Name: "Front delts"},
	{ID: 4, Name: "Glutes"},
	{ID: 3, Name: "Hamstrings"},
	{ID: 5, Name: "Hip flexors"},
	{ID: 9, Name: "Lats"},
	{ID: 13, Name: "Lateral delts"},
	{ID: 8, Name: "Lower back"},
	{ID: 7, Name: "Obliques"},
	{ID: 2, Name: "Quads"},
	{ID: 12, Name: "Rear delts"},
	{ID: 10, Name: "Traps"},
	{ID: 16, Name: "Triceps"},
}

var byID = func() map[int64]MuscleGroup {
	m := make(map[int64]MuscleGroup, len(all))
	for _, mg := range all {
		m[mg.ID] = mg
	}
	return m
}()

// All returns a copy of the list, sorted by name.
func All() []MuscleGroup {
	groups := make([]MuscleGroup, len(all))
	copy(groups, all)
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})
	return groups
}

// Valid reports whether id is a real muscle group (the sentinel is not).
func Valid(id int64) bool {
	_, ok := byID[id]
	return ok
}

// Normalize maps an optional selection to what gets stored: nil and the sentinel both become nil.
func Normalize(id *int64) *int64 {
	if id == nil || *id == None {
		return nil
	}
	v := *id
	return &v
}

// HandleList serves GET /muscle-groups
func HandleList(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponse(w, envelope.Ok(All()), http.StatusOK)
}
