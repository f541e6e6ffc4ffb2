package model

// ActorModel is the read-only slice of users the inbox needs to name an actor.
type ActorModel struct {
	ID       string  `gorm:"column:id;type:uuid;primaryKey"`
	Email    string  `gorm:"column:email"`
	Name     string  `gorm:"column:name"`
	Username *string `gorm:"column:username"`
}

func (ActorModel) TableName() string {
	return "users"
}
