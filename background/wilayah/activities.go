package wilayah

import (
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/fluwatch/fluwatch-api/schema"
)

// ResolveWilayahActivity returns the area name of a report. An empty name
// means the report is gone or already named.
func (w *WilayahWorker) ResolveWilayahActivity(ctx context.Context, laporanID string) (string, error) {
	logger := activity.GetLogger(ctx)

	id, err := uuid.Parse(laporanID)
	if err != nil {
		return "", err
	}

	laporan, err := w.store.GetLaporan(id)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			logger.Info("Laporan not found.", zap.String("laporanID", laporanID))
			return "", nil
		}
		return "", err
	}

	if laporan.NamaWilayah != nil && *laporan.NamaWilayah != "" {
		return "", nil
	}

	location := schema.Location{
		Latitude:  laporan.Lat,
		Longitude: laporan.Lng,
	}

	logger.Info("Resolve wilayah by location.", zap.Any("location", location))
	return w.resolver.NamaWilayah(ctx, location)
}

// SimpanWilayahActivity stores the area name of a report
func (w *WilayahWorker) SimpanWilayahActivity(ctx context.Context, laporanID, nama string) error {
	id, err := uuid.Parse(laporanID)
	if err != nil {
		return err
	}

	return w.store.UpdateNamaWilayah(id, nama)
}
