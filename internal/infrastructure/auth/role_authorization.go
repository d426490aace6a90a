package auth

import (
	"os"
	"strings"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

// RoleAuthorizationService gates privileged operations by role. The role
// set comes from PRIVILEGED_ROLES (comma separated) and defaults to admin
// only.
type RoleAuthorizationService struct {
	roles map[string]struct{}
}

var _ interfaces.IAuthorizationService = (*RoleAuthorizationService)(nil)

func NewRoleAuthorizationService() *RoleAuthorizationService {
	raw := os.Getenv("PRIVILEGED_ROLES")
	if raw == "" {
		raw = entities.RoleAdmin
	}

	roles := make(map[string]struct{})
	for _, r := range strings.Split(raw, ",") {
		if r = strings.TrimSpace(strings.ToLower(r)); r != "" {
			roles[r] = struct{}{}
		}
	}
	return &RoleAuthorizationService{roles: roles}
}

func (s *RoleAuthorizationService) IsPrivileged(actor entities.Actor) bool {
	_, ok := s.roles[strings.ToLower(actor.Role)]
	return ok
}
