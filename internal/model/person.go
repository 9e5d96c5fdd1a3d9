package model

// Person 学生档案表 — 对应 persons
//
// 会话内视为不可变：增删由管理端离线操作完成，本服务只读。
type Person struct {
	PersonID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"person_id"`
	Name        string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Description *string `gorm:"type:text"                                      json:"description,omitempty"`
	LogoURL     *string `gorm:"type:varchar(500)"                              json:"logo_url,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Person) TableName() string { return "persons" }
