// Package access holds the application-side authorization table. It is
// advisory: the store's own access rules remain the final enforcement point,
// so every mutating handler re-checks here rather than trusting whatever
// controls the client chose to render.
package access

import "github.com/mamadbah2/farmdash/internal/domain/models"

// Action enumerates the mutations a user can request.
type Action string

const (
	ActionCreateAnimal            Action = "animal:create"
	ActionDeleteAnimal            Action = "animal:delete"
	ActionUpdateAnimalStatus      Action = "animal:update-status"
	ActionCreateHealthRecord      Action = "health:create"
	ActionDeleteHealthRecord      Action = "health:delete"
	ActionCreateMilkRecord        Action = "milk:create"
	ActionDeleteMilkRecord        Action = "milk:delete"
	ActionCreateFeedRecord        Action = "feed:create"
	ActionDeleteFeedRecord        Action = "feed:delete"
	ActionCreateNutritionSchedule Action = "nutrition:create"
	ActionDeleteNutritionSchedule Action = "nutrition:delete"
	ActionCreateFinancialRecord   Action = "finance:create"
	ActionDeleteFinancialRecord   Action = "finance:delete"
	ActionUpdateUserRole          Action = "user:update-role"
)

var policy = map[Action]map[models.Role]bool{
	ActionCreateAnimal:            {models.RoleAdmin: true, models.RoleVeterinarian: true},
	ActionDeleteAnimal:            {models.RoleAdmin: true, models.RoleVeterinarian: true},
	ActionUpdateAnimalStatus:      {models.RoleAdmin: true, models.RoleVeterinarian: true},
	ActionCreateHealthRecord:      {models.RoleAdmin: true, models.RoleVeterinarian: true},
	ActionDeleteHealthRecord:      {models.RoleAdmin: true, models.RoleVeterinarian: true},
	ActionCreateMilkRecord:        {models.RoleAdmin: true, models.RoleWorker: true},
	ActionDeleteMilkRecord:        {models.RoleAdmin: true, models.RoleWorker: true},
	ActionCreateFeedRecord:        {models.RoleAdmin: true, models.RoleWorker: true},
	ActionDeleteFeedRecord:        {models.RoleAdmin: true, models.RoleWorker: true},
	ActionCreateNutritionSchedule: {models.RoleAdmin: true, models.RoleWorker: true},
	ActionDeleteNutritionSchedule: {models.RoleAdmin: true, models.RoleWorker: true},
	ActionCreateFinancialRecord:   {models.RoleAdmin: true},
	ActionDeleteFinancialRecord:   {models.RoleAdmin: true},
	ActionUpdateUserRole:          {models.RoleAdmin: true},
}

// CanPerform reports whether the role may perform the action. A role change
// targeting the actor's own account is always denied, admin included.
func CanPerform(role models.Role, action Action, subjectIsSelf bool) bool {
	if action == ActionUpdateUserRole && subjectIsSelf {
		return false
	}
	return policy[action][role]
}
