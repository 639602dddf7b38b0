package dto

import "time"

// ChecklistAnswerDTO is one answered template item. Estado may be empty: the
// finalization gate decides whether a missing answer blocks the inspection
// (it does for critical items only).
type ChecklistAnswerDTO struct {
	TemplateID  uint64 `json:"template_id" validate:"required"`
	Estado      string `json:"estado" validate:"omitempty,oneof=ok warning fail"`
	Observacion string `json:"observacion"`
}

type InspectionPhotoDTO struct {
	URL         string `json:"url" validate:"required"`
	PublicID    string `json:"public_id" validate:"required"`
	Descripcion string `json:"descripcion"`
}

type CreateInspectionDTO struct {
	EquipoID               uint64 `json:"equipo_id" validate:"required"`
	TipoInspeccion         string `json:"tipo_inspeccion" validate:"required,oneof=periodica envio recepcion taller almacenamiento"`
	HorometroOdometro      string `json:"horometro_odometro" validate:"required"`
	Ubicacion              string `json:"ubicacion" validate:"required"`
	ObservacionesGenerales string `json:"observaciones_generales"`
	// InspeccionEnvioRelacionada is only honored for tipo recepcion.
	InspeccionEnvioRelacionada *uint64              `json:"inspeccion_envio_relacionada"`
	Checklist                  []ChecklistAnswerDTO `json:"checklist" validate:"required,min=1,dive"`
	Fotos                      []InspectionPhotoDTO `json:"fotos" validate:"dive"`
}

type ChecklistItemDTO struct {
	Categoria   string `json:"categoria"`
	ItemNombre  string `json:"item_nombre"`
	EsCritico   bool   `json:"es_critico"`
	Estado      string `json:"estado"`
	Observacion string `json:"observacion,omitempty"`
}

type InspectionDTO struct {
	ID                         uint64    `json:"id"`
	EquipoID                   uint64    `json:"equipo_id"`
	InspectorID                uint64    `json:"inspector_id"`
	TipoInspeccion             string    `json:"tipo_inspeccion"`
	FechaHora                  time.Time `json:"fecha_hora"`
	HorometroOdometro          string    `json:"horometro_odometro"`
	Ubicacion                  string    `json:"ubicacion"`
	ObservacionesGenerales     string    `json:"observaciones_generales,omitempty"`
	Semaforo                   string    `json:"semaforo"`
	InspeccionEnvioRelacionada *uint64   `json:"inspeccion_envio_relacionada,omitempty"`

	Checklist []ChecklistItemDTO   `json:"checklist,omitempty"`
	Fotos     []InspectionPhotoDTO `json:"fotos,omitempty"`
}

// ChecklistTemplateDTO is what the inspection form is built from.
type ChecklistTemplateDTO struct {
	ID         uint64 `json:"id"`
	Categoria  string `json:"categoria"`
	ItemNombre string `json:"item_nombre"`
	EsCritico  bool   `json:"es_critico"`
	Orden      int    `json:"orden"`
}

type UploadedPhotoDTO struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}
