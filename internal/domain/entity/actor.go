package entity

// ActorRef es el snapshot de identidad del usuario que ejecuta una operación.
// Se pasa explícitamente a cada caso de uso del ledger; nunca se lee de un
// contexto de seguridad ambiente.
type ActorRef struct {
	ID    string // UUID del usuario; vacío si anónimo
	Name  string
	Email string
}

// AnonymousActor actor para operaciones sin principal autenticado.
func AnonymousActor() ActorRef {
	return ActorRef{}
}

// IsAnonymous indica si el actor carece de identidad.
func (a ActorRef) IsAnonymous() bool {
	return a.ID == ""
}

// DisplayName nombre legible para mensajes de auditoría.
func (a ActorRef) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	if a.Email != "" {
		return a.Email
	}
	return "ANONYMOUS"
}
