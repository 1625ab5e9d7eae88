package model

type Session struct {
	ID       uint
	Uuid     string
	Name     string
	Username string
	Email    string
	Phone    string
	Role     int
}
