package rbac

const (
	RoleLearner = "learner"

	PermSessionView = "session:view"
	PermSessionAct  = "session:act"
)

// RolePermissions is the default policy. Tokens are only ever issued with
// RoleLearner; any other role is denied.
var RolePermissions = map[string][]string{
	RoleLearner: {
		PermSessionView,
		PermSessionAct,
	},
}
