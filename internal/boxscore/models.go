package boxscore

// PlayerRow is one player's line in a localized box score. Display fields
// are plain strings ready for rendering; the numeric values back the
// points-descending sort and the contribution filter.
type PlayerRow struct {
	Name          string `json:"name"`
	Minutes       string `json:"minutes"`
	Points        string `json:"points"`
	FieldGoals    string `json:"field_goals"`
	ThreePointers string `json:"three_pointers"`
	FreeThrows    string `json:"free_throws"`
	Rebounds      string `json:"rebounds"`
	Assists       string `json:"assists"`
	Turnovers     string `json:"turnovers"`

	PointsValue   float64 `json:"-"`
	ReboundsValue float64 `json:"-"`
	AssistsValue  float64 `json:"-"`
}

// TeamBoxScore is one team's rows, ordered by points descending.
type TeamBoxScore []PlayerRow
