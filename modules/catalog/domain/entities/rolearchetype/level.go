package rolearchetype

import (
	"fmt"

	"github.com/dailysync/sdk/pkg/serrors"
)

// Level partially orders role archetypes within a department archetype.
// The order is the default sort for listings: IC < TEAMLEAD < HEAD < CLEVEL.
type Level string

const (
	LevelIC       Level = "IC"
	LevelTeamLead Level = "TEAMLEAD"
	LevelHead     Level = "HEAD"
	LevelCLevel   Level = "CLEVEL"
)

var levelRank = map[Level]int{
	LevelIC:       0,
	LevelTeamLead: 1,
	LevelHead:     2,
	LevelCLevel:   3,
}

func ParseLevel(value string) (Level, error) {
	if _, ok := levelRank[Level(value)]; !ok {
		return "", serrors.NewValidation(fmt.Sprintf("unknown role level %q", value))
	}
	return Level(value), nil
}

// Rank returns the position of the level in the seniority order.
func (l Level) Rank() int {
	return levelRank[l]
}
