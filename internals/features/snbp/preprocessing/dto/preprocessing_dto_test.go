package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"snbp_backend/internals/features/snbp/preprocessing/model"
)

func TestSummarizeBatch(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	at := func(s int) *time.Time { v := t0.Add(time.Duration(s) * time.Second); return &v }

	batch := uuid.New()
	logs := make([]model.PreprocessingLogModel, 0, 6)
	for i := 1; i <= 6; i++ {
		logs = append(logs, model.PreprocessingLogModel{
			BatchID: batch, Tahap: i, Status: model.LogCompleted,
			JumlahInput: 10, JumlahOutput: 10 - i,
			StartedAt: at(i), CompletedAt: at(i + 1),
		})
	}
	logs[0].JumlahInput = 12

	s := Summarize(batch, logs)
	if s.JumlahTahap != 6 || s.TotalInput != 12 || s.TotalValid != 4 || s.AdaError {
		t.Fatalf("summary = %+v", s)
	}
	if !s.StartedAt.Equal(*at(1)) || !s.CompletedAt.Equal(*at(7)) {
		t.Fatalf("time range = %v..%v", s.StartedAt, s.CompletedAt)
	}

	failed := Summarize(batch, []model.PreprocessingLogModel{{Tahap: 1, Status: model.LogError}})
	if !failed.AdaError || failed.TotalValid != 0 {
		t.Fatalf("failed batch summary = %+v", failed)
	}
}
