package domain

import "errors"

// Errores de dominio (sin dependencias externas). Conjunto cerrado: todo fallo
// que cruza un repositorio es uno de estos, nunca un error genérico sin clasificar.
var (
	ErrUnauthorized       = errors.New("no autorizado para esta operación")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrUnavailable        = errors.New("almacenamiento no disponible")
	ErrConflict           = errors.New("conflicto de escritura concurrente, reintente")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)

// Kind devuelve el error de dominio que clasifica a err, o nil si no es ninguno.
// Permite a la capa de presentación decidir entre "explicar y parar"
// (Unauthorized, InvalidTransition, InvalidInput) y "explicar y ofrecer
// reintento" (Unavailable, Conflict).
func Kind(err error) error {
	for _, k := range []error{
		ErrUnauthorized, ErrNotFound, ErrInvalidInput, ErrInvalidTransition,
		ErrUnavailable, ErrConflict, ErrDuplicate, ErrUserNotFound, ErrEmailAlreadyExists,
	} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Retryable indica si el llamador puede reintentar con backoff. El núcleo
// nunca reintenta por su cuenta.
func Retryable(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrConflict)
}
