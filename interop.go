package uuidv1

import "github.com/google/uuid"

// ToGoogle converts u to a github.com/google/uuid value.
func (u UUID) ToGoogle() uuid.UUID {
	return uuid.UUID(u)
}

// FromGoogle converts a github.com/google/uuid value.
func FromGoogle(g uuid.UUID) UUID {
	return UUID(g)
}
