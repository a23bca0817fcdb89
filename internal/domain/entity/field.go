package entity

// Field valor opcional de una actualización parcial.
// Present=false significa que el campo no vino en la petición y no se toca.
type Field[T any] struct {
	Present bool
	Value   T
}

// Some construye un Field presente.
func Some[T any](v T) Field[T] {
	return Field[T]{Present: true, Value: v}
}
