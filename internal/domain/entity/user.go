package entity

import "time"

// User representa una cuenta que puede iniciar sesión. Cada login produce un
// ActorSession con el rol y tenant del usuario. Para usuarios con rol cliente,
// CustomerID referencia el Customer en cuyo nombre opera.
type User struct {
	ID           string
	TenantID     string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Name         string
	Role         Role
	CustomerID   string // solo para rol cliente
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session materializa el ActorSession de este usuario. Para rol cliente el ID
// de sesión es el del Customer asociado, de modo que "crear pedido como su
// propio cliente" se verifica comparando IDs.
func (u *User) Session() ActorSession {
	id := u.ID
	if u.Role == RoleCliente && u.CustomerID != "" {
		id = u.CustomerID
	}
	return ActorSession{ID: id, Name: u.Name, Role: u.Role, TenantID: u.TenantID}
}
