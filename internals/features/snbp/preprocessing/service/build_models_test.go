package service

import (
	"testing"

	"github.com/google/uuid"

	"snbp_backend/internals/features/snbp/preprocessing/model"
)

func TestBuildModelsSharesBatchAndAttachesRowsToLastStage(t *testing.T) {
	records := []Record{rec(fp(75), "A", "IPA", "OSN"), rec(nil, "B", "IPS")}
	res := RunPipeline(records, Sources{Siswa: 2, Nilai: 2, Sekolah: 1}, fixedClock())

	batch := uuid.New()
	by := uuid.New()
	logs, data := BuildModels(batch, &by, res)

	if len(logs) != 6 || len(data) != 2 {
		t.Fatalf("logs=%d data=%d", len(logs), len(data))
	}
	for i, l := range logs {
		if l.BatchID != batch || l.Tahap != i+1 || l.Status != model.LogCompleted || *l.CreatedBy != by {
			t.Errorf("log %d = %+v", i, l)
		}
		if len(l.Statistik) == 0 {
			t.Errorf("log %d statistik empty", i)
		}
	}
	for _, d := range data {
		if d.LogID != logs[5].ID {
			t.Fatalf("data row must hang under stage 6 log")
		}
	}
	if data[1].IsValid || len(data[1].ValidationErrors) == 0 || data[1].DataCleaned != nil {
		t.Fatalf("dropped row = %+v", data[1])
	}
}
