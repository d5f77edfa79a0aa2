package auth

// Claims representa al tutor autenticado, según lo devuelve el backend
// de auth gestionado (Supabase). FullName cae a "Tutor" si el perfil
// no tiene nombre cargado.
type Claims struct {
	UserID    string
	Email     string
	FullName  string
	AvatarURL string
}
