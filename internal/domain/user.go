package domain

// User is a registered member that can create and join rooms.
// Name and email lengths follow the table schema (5 and 25 chars).
type User struct {
	ID        int64  `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	ImagePath string `json:"image_path"`
}

func NewUser(name, email, imagePath string) *User {
	return &User{
		Name:      name,
		Email:     email,
		ImagePath: imagePath,
	}
}
