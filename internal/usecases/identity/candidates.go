package identity

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// assigneeGroup junta as observações de um mesmo responsável vindas de várias tabelas
type assigneeGroup struct {
	spellings map[string]int64
	userIDs   map[string]int64
	roles     map[domain.Role]int64
	crmUserID *string
	count     int64
	lastSeen  time.Time
}

func newAssigneeGroup() *assigneeGroup {
	return &assigneeGroup{
		spellings: make(map[string]int64),
		userIDs:   make(map[string]int64),
		roles:     make(map[domain.Role]int64),
	}
}

func (g *assigneeGroup) add(role domain.Role, obs domain.AssigneeObservation) {
	g.spellings[obs.Name] += obs.Count
	g.roles[role] += obs.Count
	g.count += obs.Count

	if obs.UserID != nil && *obs.UserID != "" {
		g.userIDs[*obs.UserID] += obs.Count
	}
	if g.crmUserID == nil && obs.CRMUserID != nil && *obs.CRMUserID != "" {
		crmUserID := *obs.CRMUserID
		g.crmUserID = &crmUserID
	}
	if obs.LastSeenAt.After(g.lastSeen) {
		g.lastSeen = obs.LastSeenAt
	}
}

// displayName é a grafia mais frequente; empate fica com a menor em ordem alfabética
func (g *assigneeGroup) displayName() string {
	return mostFrequent(g.spellings)
}

func (g *assigneeGroup) userID() *string {
	if len(g.userIDs) == 0 {
		return nil
	}
	userID := mostFrequent(g.userIDs)
	return &userID
}

func (g *assigneeGroup) dominantRole() domain.Role {
	if g.roles[domain.RoleSalesRep] > g.roles[domain.RoleSetter] {
		return domain.RoleSalesRep
	}
	return domain.RoleSetter
}

func mostFrequent(counts map[string]int64) string {
	var best string
	var bestCount int64 = -1

	for value, count := range counts {
		if count > bestCount || (count == bestCount && value < best) {
			best = value
			bestCount = count
		}
	}

	return best
}

// ResolveCandidates lista os responsáveis vistos nas atividades, separados em convidados e não convidados
func (s *Service) ResolveCandidates(ctx context.Context, accountID string) (*domain.CandidatesResponse, error) {
	dir, err := s.loadDirectory(ctx, accountID)
	if err != nil {
		return nil, err
	}

	setters, err := s.candidatesFor(ctx, dir, domain.RoleSetter)
	if err != nil {
		return nil, err
	}

	reps, err := s.candidatesFor(ctx, dir, domain.RoleSalesRep)
	if err != nil {
		return nil, err
	}

	return &domain.CandidatesResponse{
		Reps:    flatten(reps),
		Setters: flatten(setters),
	}, nil
}

func (s *Service) candidatesFor(ctx context.Context, dir *directory, role domain.Role) (*domain.CandidateSet, error) {
	groups := make(map[string]*assigneeGroup)

	for _, kind := range domain.ActivityKinds {
		if !carries(kind, role) {
			continue
		}

		observations, err := s.activityRepository.DistinctAssignees(ctx, kind, role, dir.accountID)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao listar responsáveis de %s", kind.Table())
		}

		for _, obs := range observations {
			normalized := NormalizeName(obs.Name)
			if normalized == "" {
				continue
			}

			group, ok := groups[normalized]
			if !ok {
				group = newAssigneeGroup()
				groups[normalized] = group
			}
			group.add(role, obs)
		}
	}

	set := &domain.CandidateSet{
		Invited:   make([]domain.Candidate, 0),
		Uninvited: make([]domain.Candidate, 0),
	}

	for normalized, group := range groups {
		candidate := buildCandidate(dir, role, normalized, group)
		if candidate.Invited {
			set.Invited = append(set.Invited, candidate)
		} else {
			set.Uninvited = append(set.Uninvited, candidate)
		}
	}

	sortCandidates(set.Invited)
	sortCandidates(set.Uninvited)

	return set, nil
}

func buildCandidate(dir *directory, role domain.Role, normalized string, group *assigneeGroup) domain.Candidate {
	lastSeen := group.lastSeen
	candidate := domain.Candidate{
		Name:          group.displayName(),
		Role:          role,
		UserID:        group.userID(),
		CRMUserID:     group.crmUserID,
		ActivityCount: group.count,
		LastSeenAt:    &lastSeen,
	}

	if crmUser, ok := dir.crmUser(CRMKey(group.crmUserID, normalized)); ok {
		candidate.InvitationCount = crmUser.InvitationCount
		if candidate.UserID == nil {
			candidate.UserID = crmUser.UserID
		}
	}

	if candidate.UserID == nil {
		var sameRole []string
		for _, userID := range dir.matchName(normalized) {
			if dir.memberWithRole(userID, role) {
				sameRole = append(sameRole, userID)
			}
		}
		if len(sameRole) == 1 {
			candidate.UserID = &sameRole[0]
		}
	}

	candidate.Invited = candidate.UserID != nil && dir.memberWithRole(*candidate.UserID, role)

	switch {
	case candidate.UserID != nil:
		candidate.ID = *candidate.UserID
	case candidate.CRMUserID != nil:
		candidate.ID = *candidate.CRMUserID
	default:
		candidate.ID = nameKeyPrefix + normalized
	}

	return candidate
}

func carries(kind domain.ActivityKind, role domain.Role) bool {
	for _, assignee := range kind.Assignees() {
		if assignee == role {
			return true
		}
	}
	return false
}

func sortCandidates(candidates []domain.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].ActivityCount != candidates[j].ActivityCount {
			return candidates[i].ActivityCount > candidates[j].ActivityCount
		}
		return candidates[i].Name < candidates[j].Name
	})
}

// flatten monta a lista do painel: convidados primeiro, cada um com a flag invited
func flatten(set *domain.CandidateSet) []domain.Candidate {
	candidates := make([]domain.Candidate, 0, len(set.Invited)+len(set.Uninvited))
	candidates = append(candidates, set.Invited...)
	return append(candidates, set.Uninvited...)
}
