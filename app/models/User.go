package models

type User struct {
	Id       string `pg:"id,pk" json:"id"`
	Email    string `pg:"email" json:"email"`
	Password string `pg:"password" json:"-"`
}

type UserDto struct {
	Email string `json:"email"`
	Pass  string `json:"pass"`
}
