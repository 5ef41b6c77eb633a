package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	siswaModel "snbp_backend/internals/features/snbp/siswa/model"
)

// Jumlah semester yang dinilai untuk SNBP.
const JumlahSemester = 5

// nilai: satu baris per siswa (hard delete supaya ON CONFLICT nilai_siswa_id tetap berlaku).
type NilaiModel struct {
	ID         uuid.UUID      `gorm:"column:nilai_id;type:uuid;default:gen_random_uuid();primaryKey" json:"nilai_id"`
	SiswaID    uuid.UUID      `gorm:"column:nilai_siswa_id;type:uuid;not null;uniqueIndex:uq_nilai_siswa" json:"nilai_siswa_id"`
	Semester1  *float64       `gorm:"column:nilai_semester_1;type:numeric(5,2);check:chk_nilai_s1,nilai_semester_1 BETWEEN 0 AND 100" json:"nilai_semester_1"`
	Semester2  *float64       `gorm:"column:nilai_semester_2;type:numeric(5,2);check:chk_nilai_s2,nilai_semester_2 BETWEEN 0 AND 100" json:"nilai_semester_2"`
	Semester3  *float64       `gorm:"column:nilai_semester_3;type:numeric(5,2);check:chk_nilai_s3,nilai_semester_3 BETWEEN 0 AND 100" json:"nilai_semester_3"`
	Semester4  *float64       `gorm:"column:nilai_semester_4;type:numeric(5,2);check:chk_nilai_s4,nilai_semester_4 BETWEEN 0 AND 100" json:"nilai_semester_4"`
	Semester5  *float64       `gorm:"column:nilai_semester_5;type:numeric(5,2);check:chk_nilai_s5,nilai_semester_5 BETWEEN 0 AND 100" json:"nilai_semester_5"`
	RataRata   *float64       `gorm:"column:nilai_rata_rata;type:numeric(5,2);index" json:"nilai_rata_rata"`
	Prestasi   pq.StringArray `gorm:"column:nilai_prestasi;type:text[];not null;default:'{}'" json:"nilai_prestasi"`
	Portofolio *float64       `gorm:"column:nilai_portofolio;type:numeric(5,2);check:chk_nilai_portofolio,nilai_portofolio BETWEEN 0 AND 100" json:"nilai_portofolio"`
	Catatan    *string        `gorm:"column:nilai_catatan;type:text" json:"nilai_catatan,omitempty"`

	Siswa *siswaModel.SiswaModel `gorm:"foreignKey:SiswaID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"siswa,omitempty"`

	CreatedAt time.Time `gorm:"column:nilai_created_at;autoCreateTime" json:"nilai_created_at"`
	UpdatedAt time.Time `gorm:"column:nilai_updated_at;autoUpdateTime" json:"nilai_updated_at"`
}

func (NilaiModel) TableName() string { return "nilai" }

func (m *NilaiModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Prestasi == nil {
		m.Prestasi = pq.StringArray{}
	}
	return nil
}

// Semesters: urut semester 1..5, nil = belum diisi.
func (m *NilaiModel) Semesters() [JumlahSemester]*float64 {
	return [JumlahSemester]*float64{m.Semester1, m.Semester2, m.Semester3, m.Semester4, m.Semester5}
}

func (m *NilaiModel) SetSemester(i int, v *float64) {
	switch i {
	case 1:
		m.Semester1 = v
	case 2:
		m.Semester2 = v
	case 3:
		m.Semester3 = v
	case 4:
		m.Semester4 = v
	case 5:
		m.Semester5 = v
	}
}
