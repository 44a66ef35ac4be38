package user

import "time"

// User ids are the identity provider's subject.
type User struct {
	ID                          string    `gorm:"primaryKey;type:text" json:"id"`
	Email                       string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Name                        string    `gorm:"type:text" json:"name"`
	Picture                     string    `gorm:"type:text" json:"picture,omitempty"`
	Role                        string    `gorm:"type:text;not null;default:learner" json:"role"`
	EncryptedGoogleRefreshToken string    `gorm:"type:text" json:"-"`
	CreatedAt                   time.Time `json:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at"`
}
