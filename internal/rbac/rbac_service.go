package rbac

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Arun-hash30/Attendence-helix/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy() error
	Enforce(req domain.EnforceRequest) (bool, error)
	Roles() ([]domain.RoleResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	s := &service{enforcer: enforcer, logger: l}
	if err := s.LoadPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) LoadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for role, parents := range roleInherits {
		for _, parent := range parents {
			if _, err := s.enforcer.AddGroupingPolicy(role, parent); err != nil {
				return err
			}
		}
	}

	count := 0
	for role, perms := range rolePermissions {
		for _, perm := range perms {
			resource, action, ok := strings.Cut(perm, ":")
			if !ok {
				return fmt.Errorf("rbac: malformed permission %q", perm)
			}
			if _, err := s.enforcer.AddPolicy(role, resource, action); err != nil {
				return err
			}
			count++
		}
	}

	s.logger.Info("rbac policy loaded", zap.Int("roles", len(rolePermissions)), zap.Int("permissions", count))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("subject", req.Subject),
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("subject", req.Subject),
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Roles() ([]domain.RoleResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(rolePermissions))
	for role := range rolePermissions {
		names = append(names, role)
	}
	sort.Strings(names)

	roles := make([]domain.RoleResponse, 0, len(names))
	for _, name := range names {
		implicit, err := s.enforcer.GetImplicitPermissionsForUser(name)
		if err != nil {
			return nil, err
		}

		granted := make(map[string]bool, len(implicit))
		for _, p := range implicit {
			if len(p) >= 3 {
				granted[p[1]+":"+p[2]] = true
			}
		}

		perms := make([]domain.PermissionResponse, 0, len(granted))
		for _, p := range permissions {
			if granted[p.Resource+":"+p.Action] {
				perms = append(perms, p)
			}
		}

		roles = append(roles, domain.RoleResponse{
			Name:        name,
			Inherits:    roleInherits[name],
			Permissions: perms,
		})
	}
	return roles, nil
}
