package service

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"

	prediksiModel "snbp_backend/internals/features/snbp/prediksi/model"
	sekolahModel "snbp_backend/internals/features/snbp/sekolah/model"
)

type nilaiScan struct {
	Nama             string         `gorm:"column:siswa_nama"`
	PeringkatSekolah *int           `gorm:"column:siswa_peringkat_sekolah"`
	Semester1        *float64       `gorm:"column:nilai_semester_1"`
	Semester2        *float64       `gorm:"column:nilai_semester_2"`
	Semester3        *float64       `gorm:"column:nilai_semester_3"`
	Semester4        *float64       `gorm:"column:nilai_semester_4"`
	Semester5        *float64       `gorm:"column:nilai_semester_5"`
	RataRata         *float64       `gorm:"column:nilai_rata_rata"`
	Prestasi         pq.StringArray `gorm:"column:nilai_prestasi"`
}

// LoadNilaiRows: semua baris nilai + nama & peringkat siswa, urut waktu input.
func LoadNilaiRows(ctx context.Context, db *gorm.DB) ([]NilaiRow, error) {
	var scans []nilaiScan
	err := db.WithContext(ctx).
		Table("nilai AS n").
		Select(`s.siswa_nama, s.siswa_peringkat_sekolah,
			n.nilai_semester_1, n.nilai_semester_2, n.nilai_semester_3, n.nilai_semester_4, n.nilai_semester_5,
			n.nilai_rata_rata, n.nilai_prestasi`).
		Joins("JOIN siswa s ON s.siswa_id = n.nilai_siswa_id AND s.siswa_deleted_at IS NULL").
		Order("n.nilai_created_at ASC").
		Scan(&scans).Error
	if err != nil {
		return nil, err
	}

	rows := make([]NilaiRow, 0, len(scans))
	for _, s := range scans {
		rows = append(rows, NilaiRow{
			Nama:             s.Nama,
			Semesters:        [5]*float64{s.Semester1, s.Semester2, s.Semester3, s.Semester4, s.Semester5},
			RataRata:         s.RataRata,
			JumlahPrestasi:   len(s.Prestasi),
			PeringkatSekolah: s.PeringkatSekolah,
		})
	}
	return rows, nil
}

// LoadPrediksi: persentase & status semua prediksi aktif.
func LoadPrediksi(ctx context.Context, db *gorm.DB) ([]float64, []prediksiModel.Status, error) {
	var rows []prediksiModel.PrediksiModel
	if err := db.WithContext(ctx).
		Select("prediksi_id", "prediksi_persentase_kelulusan", "prediksi_status").
		Find(&rows).Error; err != nil {
		return nil, nil, err
	}
	pct := make([]float64, len(rows))
	st := make([]prediksiModel.Status, len(rows))
	for i, r := range rows {
		pct[i] = r.PersentaseKelulusan
		st[i] = r.Status
	}
	return pct, st, nil
}

func LoadAkreditasi(ctx context.Context, db *gorm.DB) ([]sekolahModel.Akreditasi, error) {
	var out []sekolahModel.Akreditasi
	err := db.WithContext(ctx).
		Model(&sekolahModel.SekolahModel{}).
		Pluck("sekolah_akreditasi", &out).Error
	return out, err
}
