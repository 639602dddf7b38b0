package entities

import "fleet-system/pkg/types"

// User is a backoffice or field account. The identity is consumed only to
// stamp inspector and solicitado_por on records.
type User struct {
	ID             uint64 `json:"id"`
	Email          string `json:"email"`
	PasswordHash   string `json:"-"`
	NombreCompleto string `json:"nombre_completo"`
	Rol            string `json:"rol"`

	types.BaseEntity
}

// Site (obra) is a known work site equipment gets dispatched to.
type Site struct {
	ID         uint64 `json:"id"`
	NombreObra string `json:"nombre_obra"`
	Activa     bool   `json:"activa"`

	types.BaseEntity
}
