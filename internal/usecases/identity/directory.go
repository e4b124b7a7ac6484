package identity

import (
	"sort"
	"strings"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const nameKeyPrefix = "name:"

// NormalizeName deixa o nome em minúsculas, sem espaços nas pontas e com espaços internos únicos
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// CRMKey é a chave do usuário do CRM; sem id do CRM usa o nome normalizado
func CRMKey(crmUserID *string, name string) string {
	if crmUserID != nil && *crmUserID != "" {
		return *crmUserID
	}
	return nameKeyPrefix + NormalizeName(name)
}

// directory é a foto dos membros ativos e usuários do CRM de uma conta usada durante uma resolução
type directory struct {
	accountID string
	members   map[string]domain.AccountAccess
	byName    map[string][]string
	crmUsers  map[string]domain.CRMUser
}

func newDirectory(accountID string, members []domain.AccountAccess, crmUsers []domain.CRMUser) *directory {
	d := &directory{
		accountID: accountID,
		members:   make(map[string]domain.AccountAccess, len(members)),
		byName:    make(map[string][]string),
		crmUsers:  make(map[string]domain.CRMUser, len(crmUsers)),
	}

	for _, member := range members {
		if !member.IsActive {
			continue
		}
		d.members[member.UserID] = member

		name := NormalizeName(member.DisplayName)
		if name != "" {
			d.byName[name] = append(d.byName[name], member.UserID)
		}
	}

	for name := range d.byName {
		sort.Strings(d.byName[name])
	}

	for _, user := range crmUsers {
		d.crmUsers[user.CRMUserID] = user
	}

	return d
}

// memberByCRMUser devolve o membro ativo vinculado ao id do CRM, se houver
func (d *directory) memberByCRMUser(crmUserID *string) (domain.AccountAccess, bool) {
	if crmUserID == nil || *crmUserID == "" {
		return domain.AccountAccess{}, false
	}

	user, ok := d.crmUsers[*crmUserID]
	if !ok || user.UserID == nil {
		return domain.AccountAccess{}, false
	}

	member, ok := d.members[*user.UserID]
	return member, ok
}

func (d *directory) matchName(normalized string) []string {
	return d.byName[normalized]
}

// memberWithRole indica se o usuário é membro ativo com o papel informado
func (d *directory) memberWithRole(userID string, role domain.Role) bool {
	member, ok := d.members[userID]
	return ok && member.Role == role
}

func (d *directory) crmUser(key string) (domain.CRMUser, bool) {
	user, ok := d.crmUsers[key]
	return user, ok
}
