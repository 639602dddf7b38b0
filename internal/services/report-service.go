package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"fleet-system/internal/repositories"
	"fleet-system/pkg/types"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	ExportInspections(ctx context.Context, filter types.Filter) (*bytes.Buffer, string, error)
}

// ReportService renders the inspection history as an Excel workbook for the
// office side.
type ReportService struct {
	inspectionRepo repositories.InspectionRepositoryInterface
	equipmentRepo  repositories.EquipmentRepositoryInterface
	logger         *zap.Logger
}

func NewReportService(
	inspectionRepo repositories.InspectionRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{inspectionRepo: inspectionRepo, equipmentRepo: equipmentRepo, logger: logger}
}

var inspectionReportHeader = []string{
	"ID", "Fecha", "Equipo", "Denominación", "Tipo Inspección",
	"Semáforo", "Ubicación", "Horómetro/Odómetro", "Observaciones",
}

func (s *ReportService) ExportInspections(ctx context.Context, filter types.Filter) (*bytes.Buffer, string, error) {
	// The export ignores pagination on purpose; filters still apply.
	filter.Limit = 0
	inspections, _, err := s.inspectionRepo.GetInspections(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	equipments, _, err := s.equipmentRepo.GetEquipments(ctx, types.Filter{})
	if err != nil {
		return nil, "", err
	}
	codes := make(map[uint64][2]string, len(equipments))
	for _, e := range equipments {
		codes[e.ID] = [2]string{e.NumeroIdentificacion, e.Denominacion}
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inspecciones"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range inspectionReportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", err
		}
	}

	for i, insp := range inspections {
		code := codes[insp.EquipoID]
		row := []interface{}{
			insp.ID,
			insp.FechaHora.Format("2006-01-02 15:04"),
			code[0],
			code[1],
			insp.TipoInspeccion,
			insp.Semaforo,
			insp.Ubicacion,
			insp.HorometroOdometro,
			insp.ObservacionesGenerales.String,
		}
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", err
			}
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("inspection report generated", zap.Int("rows", len(inspections)))

	fileName := fmt.Sprintf("inspecciones-%s.xlsx", time.Now().Format("2006-01-02"))
	return buffer, fileName, nil
}
