package postgres

import "github.com/btcc-fantasy/league-engine/internal/domain/profile"

type profileTableModel struct {
	PlayerID    string `db:"player_id"`
	DisplayName string `db:"display_name"`
	TeamID      string `db:"team_id"`
	TeamName    string `db:"team_name"`
}

func profileFromRow(row profileTableModel) profile.Profile {
	return profile.Profile{
		PlayerID:    row.PlayerID,
		DisplayName: row.DisplayName,
		TeamID:      row.TeamID,
		TeamName:    row.TeamName,
	}
}
