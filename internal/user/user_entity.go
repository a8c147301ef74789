package user

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is owned by the account system; this service only reads it.
type User struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(255)"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex"`
	Phone     string    `gorm:"column:phone;type:varchar(50)"`
	Role      string    `gorm:"column:role;type:varchar(20);default:user"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
