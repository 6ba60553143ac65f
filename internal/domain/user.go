package domain

// RoleName 角色名称
type RoleName string

const (
	RoleRH       RoleName = "ROLE_RH"
	RoleNurse    RoleName = "ROLE_NURSE"
	RoleDoctor   RoleName = "ROLE_DOCTOR"
	RoleAdmin    RoleName = "ROLE_ADMIN"
	RoleEmployee RoleName = "ROLE_EMPLOYEE"
)

// User 用户身份，ID 为 0 表示身份未知
type User struct {
	ID       int64
	Username string
	Email    string
	Roles    []RoleName
}

// HasRole 判断用户是否拥有任一给定角色
func (u *User) HasRole(roles ...RoleName) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		for _, want := range roles {
			if r == want {
				return true
			}
		}
	}
	return false
}

// SameIdentity 两个用户都有身份且身份相同
func (u *User) SameIdentity(other *User) bool {
	return u != nil && other != nil && u.ID != 0 && u.ID == other.ID
}
