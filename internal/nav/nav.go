// Package nav holds the client-side navigation targets returned in form and
// picker outcomes. The client follows them, the server never routes on them.
package nav

import "strconv"

const (
	Exercises = "/exercises"
	Programs  = "/programs"
	Profile   = "/profile"
)

func EditExercise(id int64) string {
	return Exercises + "/edit/" + strconv.FormatInt(id, 10)
}

func ExerciseFromTemplate(id int64) string {
	return Exercises + "/create-from-template/" + strconv.FormatInt(id, 10)
}

func EditProgram(id int64) string {
	return Programs + "/edit/" + strconv.FormatInt(id, 10)
}
