package nflapi

// League identifies one of the two leagues the API serves. Query fields
// accept either the typed constant or the raw value (1 or 2).
type League int

const (
	LeagueNFL  League = 1
	LeagueNCAA League = 2
)

// StatisticsGroup selects a category of per-player game statistics.
type StatisticsGroup string

const (
	GroupDefensive     StatisticsGroup = "defensive"
	GroupFumbles       StatisticsGroup = "fumbles"
	GroupInterceptions StatisticsGroup = "interceptions"
	GroupKickReturns   StatisticsGroup = "kick_returns"
	GroupKicking       StatisticsGroup = "kicking"
	GroupPassing       StatisticsGroup = "passing"
	GroupPuntReturns   StatisticsGroup = "punt_returns"
	GroupPunting       StatisticsGroup = "punting"
	GroupReceiving     StatisticsGroup = "receiving"
	GroupRushing       StatisticsGroup = "rushing"
)

// Conference identifies an NFL conference by its full name, the form the
// standings endpoint expects.
type Conference string

const (
	ConferenceAFC Conference = "American Football Conference"
	ConferenceNFC Conference = "National Football Conference"
)

// Division identifies a division within a conference.
type Division string

const (
	DivisionNorth Division = "North"
	DivisionSouth Division = "South"
	DivisionEast  Division = "East"
	DivisionWest  Division = "West"
)

func statisticsGroupValues() []string {
	return []string{
		"defensive", "fumbles", "interceptions", "kick_returns", "kicking",
		"passing", "punt_returns", "punting", "receiving", "rushing",
	}
}

func conferenceValues() []string {
	return []string{"American Football Conference", "National Football Conference"}
}

func divisionValues() []string {
	return []string{"North", "South", "East", "West"}
}
