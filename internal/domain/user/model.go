package user

// User is a caregiving staff account. The password is stored only as a
// bcrypt hash and never serialized.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
