package model

// Table and column names follow the existing MySQL schema.

type User struct {
	UserID    int64  `gorm:"column:user_id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:name;size:5;not null"`
	Email     string `gorm:"column:email;size:25;not null"`
	ImagePath string `gorm:"column:image_path;size:255;not null"`
}

func (User) TableName() string { return "tbl_user" }

type Admin struct {
	AdminID  string `gorm:"column:admin_id;size:255;primaryKey"`
	Password string `gorm:"column:password;size:255;not null"`
}

func (Admin) TableName() string { return "tbl_admin" }

type Room struct {
	RoomID     int64  `gorm:"column:room_id;primaryKey;autoIncrement"`
	CreatorID  int64  `gorm:"column:creator_id;not null"`
	Emoji      string `gorm:"column:emoji;size:255;not null"`
	Name       string `gorm:"column:name;size:255;not null"`
	IsApproved bool   `gorm:"column:is_approved;not null;default:false"`

	Creator User `gorm:"foreignKey:CreatorID;references:UserID"`
}

func (Room) TableName() string { return "tbl_room" }

type JoinedRoom struct {
	UserID int64 `gorm:"column:user_id;primaryKey"`
	RoomID int64 `gorm:"column:room_id;primaryKey"`

	User User `gorm:"foreignKey:UserID;references:UserID"`
	Room Room `gorm:"foreignKey:RoomID;references:RoomID"`
}

func (JoinedRoom) TableName() string { return "tbl_registered_room" }

type Todo struct {
	TodoID     int64  `gorm:"column:todo_id;primaryKey;autoIncrement"`
	Name       string `gorm:"column:name;size:255;not null"`
	IsApproved bool   `gorm:"column:is_approved;not null;default:false"`
}

func (Todo) TableName() string { return "tbl_todo" }

type JoinedTodo struct {
	RoomID int64 `gorm:"column:room_id;primaryKey"`
	TodoID int64 `gorm:"column:todo_id;primaryKey"`
	Amount int64 `gorm:"column:amount;not null;default:0"`

	Room Room `gorm:"foreignKey:RoomID;references:RoomID"`
	Todo Todo `gorm:"foreignKey:TodoID;references:TodoID"`
}

func (JoinedTodo) TableName() string { return "tbl_registered_todo" }
