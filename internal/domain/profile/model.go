package profile

// Profile maps a player to their fantasy team. Owned by the player-onboarding
// workflow; the engine only reads it when grouping team standings.
type Profile struct {
	PlayerID    string
	DisplayName string
	TeamID      string
	TeamName    string
}
