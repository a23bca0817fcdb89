package entity

import "time"

// Session vincula un token opaco con un username. Vive hasta el logout.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
}
