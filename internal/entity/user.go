package entity

type User struct {
	ID       int64  `db:"id" gorm:"primaryKey"`
	Username string `db:"username" gorm:"size:20;not null;uniqueIndex:users_username_key"`
	Email    string `db:"email" gorm:"size:30;not null;uniqueIndex:users_email_key"`
	Password string `db:"password" gorm:"size:80"`
}

func (User) TableName() string {
	return "users"
}

// UserLoginData is the identity kept in the session after a successful login.
type UserLoginData struct {
	ID       int64
	Username string
}
