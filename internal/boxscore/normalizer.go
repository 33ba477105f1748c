package boxscore

import (
	"sort"
	"strings"

	"github.com/fortuna/iris/internal/locale"
)

// Stat labels looked up by name. The upstream payload pairs a shared ordered
// label list with each athlete's own value list; binding by label instead of
// position survives reordered or truncated value arrays.
const (
	labelMinutes   = "MIN"
	labelPoints    = "PTS"
	labelPointsZH  = "得分"
	labelRebounds  = "REB"
	labelAssists   = "AST"
	labelTurnovers = "TO"
	labelFG        = "FG"
	label3PT       = "3PT"
	labelFT        = "FT"
)

// Normalizer converts a raw game-summary payload of variable shape into two
// localized, typed box scores. Stateless and safe for concurrent use.
type Normalizer struct {
	resolver *locale.Resolver
}

// NewNormalizer creates a normalizer that localizes player names through res.
func NewNormalizer(res *locale.Resolver) *Normalizer {
	return &Normalizer{resolver: res}
}

// teamBlockStrategies locate the two per-team statistic blocks. The upstream
// API nests them differently across endpoint versions, so each known shape
// gets a strategy, tried in order.
var teamBlockStrategies = []func(map[string]interface{}) []interface{}{
	func(p map[string]interface{}) []interface{} { return asArray(asMap(p, "boxscore"), "players") },
	func(p map[string]interface{}) []interface{} { return asArray(asMap(p, "boxscore"), "teams") },
	func(p map[string]interface{}) []interface{} { return asArray(p, "players") },
}

// Normalize produces the away and home box scores for one game. Absent or
// malformed payloads yield two empty slices; a corrupt athlete entry is
// skipped without affecting the rest of its team. Never panics, never
// returns an error: missing live data is an expected state, not a failure.
func (n *Normalizer) Normalize(payload map[string]interface{}) (away, home TeamBoxScore) {
	away, home = TeamBoxScore{}, TeamBoxScore{}
	if payload == nil {
		return
	}

	blocks := locateTeamBlocks(payload)
	if len(blocks) < 2 {
		return
	}

	first, ok1 := blocks[0].(map[string]interface{})
	second, ok2 := blocks[1].(map[string]interface{})
	if !ok1 || !ok2 {
		return
	}

	// Prefer the payload's explicit homeAway marker over positional
	// convention; endpoint versions disagree on block order.
	if blockSide(first) == "home" || blockSide(second) == "away" {
		first, second = second, first
	}

	return n.normalizeTeam(first), n.normalizeTeam(second)
}

func locateTeamBlocks(payload map[string]interface{}) []interface{} {
	for _, strategy := range teamBlockStrategies {
		if blocks := strategy(payload); len(blocks) >= 2 {
			return blocks
		}
	}
	return nil
}

// blockSide returns "home", "away", or "" from a team block's own metadata.
func blockSide(block map[string]interface{}) string {
	if side := fieldString(block, "homeAway"); side != "" {
		return side
	}
	return fieldString(asMap(block, "team"), "homeAway")
}

// normalizeTeam builds one team's rows from its statistic block.
func (n *Normalizer) normalizeTeam(block map[string]interface{}) TeamBoxScore {
	rows := TeamBoxScore{}

	labels, athletes := mainStatGroup(block)
	if len(labels) == 0 {
		return rows
	}

	for _, entry := range athletes {
		athleteData, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if row := n.buildRow(athleteData, labels); row != nil {
			rows = append(rows, *row)
		}
	}

	// Ties keep encounter order.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PointsValue > rows[j].PointsValue
	})
	return rows
}

// mainStatGroup finds the first statistics group carrying a points label.
// Teams also publish secondary groups (starters/bench splits, team totals)
// that must not be mistaken for the player table.
func mainStatGroup(block map[string]interface{}) ([]string, []interface{}) {
	for _, groupInterface := range asArray(block, "statistics") {
		group, ok := groupInterface.(map[string]interface{})
		if !ok {
			continue
		}

		labels := labelList(group)
		athletes := asArray(group, "athletes")
		if len(athletes) == 0 {
			continue
		}

		for _, label := range labels {
			if label == labelPoints || label == labelPointsZH {
				return labels, athletes
			}
		}
	}
	return nil, nil
}

// labelList reads the group's ordered label strings. Some endpoint versions
// call the field "labels", others "names".
func labelList(group map[string]interface{}) []string {
	raw := asArray(group, "labels")
	if len(raw) == 0 {
		raw = asArray(group, "names")
	}

	labels := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			labels = append(labels, s)
		} else {
			labels = append(labels, "")
		}
	}
	return labels
}

// buildRow converts one athlete entry into a PlayerRow, or nil when the entry
// is unusable or shows no contribution.
func (n *Normalizer) buildRow(athleteData map[string]interface{}, labels []string) *PlayerRow {
	name := athleteName(athleteData)
	if name == "" || locale.IsSentinel(name) {
		return nil
	}

	rawValues := asArray(athleteData, "stats")
	if len(rawValues) == 0 {
		return nil
	}

	// Zip labels with this athlete's values, bounded by the shorter list.
	// The two legitimately differ in length for sparse live rows.
	stats := make(map[string]string, len(labels))
	for i, label := range labels {
		if i >= len(rawValues) {
			break
		}
		stats[label] = stringValue(rawValues[i])
	}

	get := func(label, def string) string {
		if v, ok := stats[label]; ok && v != "" {
			return v
		}
		return def
	}

	fgMade, fgAtt := splitShotLine(get(labelFG, "0-0"))
	tpMade, tpAtt := splitShotLine(get(label3PT, "0-0"))
	ftMade, ftAtt := splitShotLine(get(labelFT, "0-0"))

	points := safeCount(get(labelPoints, "0"))
	rebounds := safeCount(get(labelRebounds, "0"))
	assists := safeCount(get(labelAssists, "0"))
	turnovers := safeCount(get(labelTurnovers, "0"))
	minutes := formatMinutes(get(labelMinutes, "0"))

	row := &PlayerRow{
		Name:          n.resolver.ResolvePlayer(name),
		Minutes:       minutes,
		Points:        points,
		FieldGoals:    fgMade + "/" + fgAtt,
		ThreePointers: tpMade + "/" + tpAtt,
		FreeThrows:    ftMade + "/" + ftAtt,
		Rebounds:      rebounds,
		Assists:       assists,
		Turnovers:     turnovers,
		PointsValue:   countValue(points),
		ReboundsValue: countValue(rebounds),
		AssistsValue:  countValue(assists),
	}

	if !hasContribution(row, fgMade, tpMade, ftMade) {
		return nil
	}
	return row
}

// hasContribution suppresses did-not-play rows: the upstream DNP flag is not
// reliably present, so the row itself has to show something.
func hasContribution(row *PlayerRow, fgMade, tpMade, ftMade string) bool {
	if row.PointsValue > 0 || row.ReboundsValue > 0 || row.AssistsValue > 0 {
		return true
	}
	if countValue(fgMade) > 0 || countValue(tpMade) > 0 || countValue(ftMade) > 0 {
		return true
	}
	return row.Minutes != "0:00" && row.Minutes != "0"
}

// athleteName extracts a display name from the first populated candidate
// field; the schema is not consistent about which one it uses.
func athleteName(athleteData map[string]interface{}) string {
	athlete := asMap(athleteData, "athlete")
	candidates := []string{
		fieldString(athlete, "displayName"),
		fieldString(athlete, "fullName"),
		fieldString(athlete, "shortName"),
		fieldString(athleteData, "displayName"),
		fieldString(athleteData, "name"),
	}
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return ""
}

// Payload access helpers: tolerant of missing keys and wrong types.

func asMap(m map[string]interface{}, key string) map[string]interface{} {
	if m != nil {
		if v, ok := m[key].(map[string]interface{}); ok {
			return v
		}
	}
	return map[string]interface{}{}
}

func asArray(m map[string]interface{}, key string) []interface{} {
	if m != nil {
		if v, ok := m[key].([]interface{}); ok {
			return v
		}
	}
	return nil
}

func fieldString(m map[string]interface{}, key string) string {
	if m != nil {
		if v, ok := m[key].(string); ok {
			return v
		}
	}
	return ""
}
