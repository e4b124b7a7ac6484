package domain

import "strings"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleSalesRep  Role = "sales_rep"
	RoleSetter    Role = "setter"
)

var roleRank = map[Role]int{
	RoleSetter:    1,
	RoleSalesRep:  2,
	RoleModerator: 3,
	RoleAdmin:     4,
}

// Rank ordena os papéis para checagens de papel mínimo. Papéis desconhecidos valem 0.
func (r Role) Rank() int {
	return roleRank[r]
}

// IsAssignee indica se o papel aparece como responsável em registros de atividade
func (r Role) IsAssignee() bool {
	return r == RoleSetter || r == RoleSalesRep
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	return role, role.Valid()
}

// AccountAccess vincula um usuário da plataforma a uma conta com um papel
type AccountAccess struct {
	UserID      string `json:"user_id"`
	AccountID   string `json:"account_id"`
	Role        Role   `json:"role"`
	IsActive    bool   `json:"is_active"`
	DisplayName string `json:"display_name"`
}
