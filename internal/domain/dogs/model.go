package dogs

import "time"

// Size
// @Enum small, medium, large
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

// Dog tiene exactamente un dueño.
type Dog struct {
	ID      int64
	OwnerID int64

	Name string
	Size Size

	CreatedAt time.Time
}

// Listing es la fila de la consulta de perros: nombre, tamaño y username del dueño.
type Listing struct {
	DogName       string
	Size          Size
	OwnerUsername string
}
