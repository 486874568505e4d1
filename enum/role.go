package enum

type Role string

const (
	RoleAdmin          Role = "admin"
	RoleCoach          Role = "coach"
	RolePlayer         Role = "player"
	RoleClub           Role = "club"
	RolePartner        Role = "partner"
	RoleStateCommittee Role = "state_committee"
)
