package api

// Claves del estado de sesión persistido (el análogo del localStorage del
// cliente web: tokens más valores de UI cacheados). Sin versionado.
const (
	ClaveAccess       = "access"
	ClaveRefresh      = "refresh"
	ClaveUsername     = "username"
	ClaveUserRole     = "userRole"
	ClaveNombreTaller = "nombre_taller"
	ClaveLogoTaller   = "logo_taller"
)

// SessionStore es lo que el cliente necesita de la sesión. Lo implementa
// internal/infrastructure/session con un archivo JSON.
type SessionStore interface {
	Get(clave string) string
	Put(valores map[string]string) error
	Clear() error
}
