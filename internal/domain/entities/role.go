package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleGerente  Role = "gerente"
	RoleVendedor Role = "vendedor"
)

// Permission representa uma permissão específica
type Permission string

const (
	// User permissions
	PermissionUserRead   Permission = "users.read"
	PermissionUserWrite  Permission = "users.write"
	PermissionUserDelete Permission = "users.delete"

	// Inventory permissions
	PermissionVehicleRead  Permission = "vehicles.read"
	PermissionVehicleWrite Permission = "vehicles.write"

	// Sales permissions
	PermissionSaleRead   Permission = "sales.read"
	PermissionSaleWrite  Permission = "sales.write"
	PermissionSaleCancel Permission = "sales.cancel"

	// Financial permissions
	PermissionFinancialRead Permission = "financial.read"

	// Goal permissions
	PermissionGoalRead  Permission = "goals.read"
	PermissionGoalWrite Permission = "goals.write"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionUserRead,
		PermissionUserWrite,
		PermissionUserDelete,
		PermissionVehicleRead,
		PermissionVehicleWrite,
		PermissionSaleRead,
		PermissionSaleWrite,
		PermissionSaleCancel,
		PermissionFinancialRead,
		PermissionGoalRead,
		PermissionGoalWrite,
	},
	RoleGerente: {
		PermissionUserRead,
		PermissionVehicleRead,
		PermissionVehicleWrite,
		PermissionSaleRead,
		PermissionSaleWrite,
		PermissionSaleCancel,
		PermissionFinancialRead,
		PermissionGoalRead,
		PermissionGoalWrite,
	},
	RoleVendedor: {
		PermissionVehicleRead,
		PermissionSaleRead,
		PermissionSaleWrite,
		PermissionGoalRead,
	},
}

// Valid verifica se o role é um dos valores conhecidos
func (r Role) Valid() bool {
	_, ok := RolePermissions[r]
	return ok
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}
