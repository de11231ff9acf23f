package entity

// Usuario es la cuenta de acceso asociada a un empleado o cliente.
type Usuario struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
	Activo   bool   `json:"activo"`
}

// Perfil es la vista propia del usuario autenticado (/auth/me/, /profile/).
type Perfil struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Rol          string `json:"rol"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Telefono     string `json:"telefono"`
	NombreTaller string `json:"nombre_taller"`
	LogoTaller   string `json:"logo_taller"`
}
