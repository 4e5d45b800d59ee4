package permission

import (
	"context"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task/repository"
)

// HasProjectAccess reports whether the scope may act on a project. The
// application scope is always allowed; app admins may act on any
// existing project.
func (g *implGate) HasProjectAccess(ctx context.Context, sc model.Scope, projectID int64) (bool, error) {
	if !sc.IsUser() {
		return true, nil
	}
	if projectID <= 0 {
		return false, nil
	}

	role, err := g.projectRole(ctx, projectID, sc.UserID)
	if err != nil {
		return false, err
	}
	if role != "" {
		return true, nil
	}
	if !sc.IsAppAdmin() {
		return false, nil
	}

	p, err := g.store.GetOneProject(ctx, projectID)
	if err != nil {
		g.l.Errorf(ctx, "%s GetOneProject: %v", g.dsn("HasProjectAccess"), err)
		return false, err
	}
	return p.ID != 0, nil
}

// HasTaskAccess resolves the task's project and checks access to it. A
// missing task is denied for users.
func (g *implGate) HasTaskAccess(ctx context.Context, sc model.Scope, taskID int64) (bool, error) {
	if !sc.IsUser() {
		return true, nil
	}

	t, err := g.store.GetOneTask(ctx, repository.GetOneTaskOptions{ID: taskID})
	if err != nil {
		g.l.Errorf(ctx, "%s GetOneTask: %v", g.dsn("HasTaskAccess"), err)
		return false, err
	}
	if t.ID == 0 {
		return false, nil
	}
	return g.HasProjectAccess(ctx, sc, t.ProjectID)
}

// IsOwnerAssignable reports whether an active user holds a role that can
// be assigned tasks in the project. Viewers cannot.
func (g *implGate) IsOwnerAssignable(ctx context.Context, projectID, userID int64) (bool, error) {
	u, err := g.store.GetOneUser(ctx, userID)
	if err != nil {
		g.l.Errorf(ctx, "%s GetOneUser: %v", g.dsn("IsOwnerAssignable"), err)
		return false, err
	}
	if u.ID == 0 || !u.IsActive {
		return false, nil
	}

	role, err := g.projectRole(ctx, projectID, userID)
	if err != nil {
		return false, err
	}
	return role == model.RoleProjectManager || role == model.RoleProjectMember, nil
}

// projectRole returns the effective role of a user in a project: the
// owner is a manager, a direct membership wins next, and everybody-allowed
// projects make any user a member. "" means no access.
func (g *implGate) projectRole(ctx context.Context, projectID, userID int64) (string, error) {
	key := roleKey{projectID: projectID, userID: userID}
	if g.roles != nil {
		if role, ok := g.roles.Get(key); ok {
			return role, nil
		}
	}

	p, err := g.store.GetOneProject(ctx, projectID)
	if err != nil {
		g.l.Errorf(ctx, "%s GetOneProject: %v", g.dsn("projectRole"), err)
		return "", err
	}

	var role string
	switch {
	case p.ID == 0 || !p.IsActive:
	case p.OwnerID == userID:
		role = model.RoleProjectManager
	default:
		role, err = g.store.GetProjectRole(ctx, projectID, userID)
		if err != nil {
			g.l.Errorf(ctx, "%s GetProjectRole: %v", g.dsn("projectRole"), err)
			return "", err
		}
		if role == "" && p.IsEverybodyAllowed {
			role = model.RoleProjectMember
		}
	}

	if g.roles != nil {
		g.roles.Add(key, role)
	}
	return role, nil
}
