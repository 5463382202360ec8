package entity

import "time"

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Salt         string    `json:"-" gorm:"not null"`
	Deleted      bool      `json:"deleted" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"createdDate"`
	UpdatedAt    time.Time `json:"updatedDate"`
}

func (User) TableName() string {
	return "users"
}
