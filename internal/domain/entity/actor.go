package entity

// Role es el rol de un actor dentro de la plataforma. Enumeración cerrada:
// cualquier valor fuera de estos tres se rechaza, nunca se asume un defecto.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleInterno Role = "interno"
	RoleCliente Role = "cliente"
)

// IsValid verifica que el rol pertenezca a la enumeración.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleInterno, RoleCliente:
		return true
	}
	return false
}

// String devuelve la representación textual del rol.
func (r Role) String() string {
	return string(r)
}

// ActorSession es la identidad resuelta que acompaña cada operación de dominio.
// La produce el colaborador de autenticación (login + JWT); el núcleo la
// consume, nunca la construye. Inmutable durante la vida de una operación.
type ActorSession struct {
	ID       string // para rol cliente coincide con el ID del Customer
	Name     string
	Role     Role
	TenantID string
}
