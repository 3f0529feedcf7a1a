package user

type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)
