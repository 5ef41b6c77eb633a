package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"snbp_backend/internals/constants"
	activityController "snbp_backend/internals/features/snbp/activity/controller"
	activityDTO "snbp_backend/internals/features/snbp/activity/dto"
	"snbp_backend/internals/features/snbp/dashboard/dto"
	guruModel "snbp_backend/internals/features/snbp/guru/model"
	nilaiDTO "snbp_backend/internals/features/snbp/nilai/dto"
	nilaiService "snbp_backend/internals/features/snbp/nilai/service"
	prediksiDTO "snbp_backend/internals/features/snbp/prediksi/dto"
	prediksiService "snbp_backend/internals/features/snbp/prediksi/service"
	sekolahModel "snbp_backend/internals/features/snbp/sekolah/model"
	siswaDTO "snbp_backend/internals/features/snbp/siswa/dto"
	siswaModel "snbp_backend/internals/features/snbp/siswa/model"
	siswaService "snbp_backend/internals/features/snbp/siswa/service"
	statistikService "snbp_backend/internals/features/snbp/statistik/service"
	helper "snbp_backend/internals/helpers"
	helperAuth "snbp_backend/internals/helpers/auth"
)

const (
	aktivitasTerbaru = 10
	prediksiTerbaru  = 5
)

var ErrUnknownRole = errors.New("role tidak dikenal untuk dashboard")

// Builders: satu fungsi per role. Dispatch memilih tepat satu.
type Builders struct {
	Admin func(ctx context.Context) (any, error)
	Guru  func(ctx context.Context) (any, error)
	Siswa func(ctx context.Context, s *helperAuth.Session) (any, error)
}

func Dispatch(ctx context.Context, s *helperAuth.Session, b Builders) (any, error) {
	switch s.Role {
	case constants.RoleAdmin:
		return b.Admin(ctx)
	case constants.RoleGuru:
		return b.Guru(ctx)
	case constants.RoleSiswa:
		return b.Siswa(ctx, s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, s.Role)
	}
}

func DBBuilders(db *gorm.DB) Builders {
	return Builders{
		Admin: func(ctx context.Context) (any, error) { return AdminView(ctx, db) },
		Guru:  func(ctx context.Context) (any, error) { return GuruView(ctx, db) },
		Siswa: func(ctx context.Context, s *helperAuth.Session) (any, error) { return SiswaView(ctx, db, s) },
	}
}

type common struct {
	totalSiswa int64
	rataRata   float64
	persentase []float64
	status     map[string]int
	semester   []statistikService.SemesterMean
}

func loadCommon(ctx context.Context, db *gorm.DB) (*common, error) {
	var out common
	if err := db.WithContext(ctx).Model(&siswaModel.SiswaModel{}).Count(&out.totalSiswa).Error; err != nil {
		return nil, err
	}

	rows, err := statistikService.LoadNilaiRows(ctx, db)
	if err != nil {
		return nil, err
	}
	avgs := make([]*float64, len(rows))
	for i := range rows {
		avgs[i] = rows[i].RataRata
	}
	out.rataRata = RataRataNilai(avgs)
	out.semester = statistikService.SemesterMeans(rows)

	pct, st, err := statistikService.LoadPrediksi(ctx, db)
	if err != nil {
		return nil, err
	}
	out.persentase = pct
	out.status = statistikService.CountPrediksi(pct, st).Status
	return &out, nil
}

func AdminView(ctx context.Context, db *gorm.DB) (*dto.AdminView, error) {
	cm, err := loadCommon(ctx, db)
	if err != nil {
		return nil, err
	}

	v := &dto.AdminView{
		Role:             string(constants.RoleAdmin),
		TotalSiswa:       cm.totalSiswa,
		TotalPrediksi:    len(cm.persentase),
		RataRataNilai:    cm.rataRata,
		PersentaseLolos:  PersentaseLolos(cm.persentase),
		StatusPrediksi:   cm.status,
		NilaiPerSemester: cm.semester,
	}

	tx := db.WithContext(ctx)
	if err := tx.Model(&guruModel.GuruModel{}).Count(&v.TotalGuru).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&sekolahModel.SekolahModel{}).Count(&v.TotalSekolah).Error; err != nil {
		return nil, err
	}
	akr, err := statistikService.LoadAkreditasi(ctx, db)
	if err != nil {
		return nil, err
	}
	v.DistribusiAkreditasi = statistikService.CountAkreditasi(akr)

	var logs []activityDTO.ActivityLogRow
	if err := activityController.QueryLatest(tx, aktivitasTerbaru, 0).Scan(&logs).Error; err != nil {
		return nil, err
	}
	v.AktivitasTerbaru = make([]activityDTO.ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		v.AktivitasTerbaru = append(v.AktivitasTerbaru, activityDTO.FromRow(l))
	}
	return v, nil
}

func GuruView(ctx context.Context, db *gorm.DB) (*dto.GuruView, error) {
	cm, err := loadCommon(ctx, db)
	if err != nil {
		return nil, err
	}
	latest, err := prediksiService.Latest(ctx, db, prediksiTerbaru)
	if err != nil {
		return nil, err
	}
	return &dto.GuruView{
		Role:             string(constants.RoleGuru),
		TotalSiswa:       cm.totalSiswa,
		TotalPrediksi:    len(cm.persentase),
		RataRataNilai:    cm.rataRata,
		PersentaseLolos:  PersentaseLolos(cm.persentase),
		NilaiPerSemester: cm.semester,
		PrediksiTerbaru:  prediksiDTO.FromModels(latest),
	}, nil
}

// SiswaView: data milik siswa yang login. Nilai/prediksi yang belum ada dikirim null.
func SiswaView(ctx context.Context, db *gorm.DB, s *helperAuth.Session) (*dto.SiswaView, error) {
	m, err := siswaService.FindByUserID(ctx, db, s.UserID)
	if err != nil {
		return nil, err
	}
	sr := siswaDTO.FromModel(m)
	v := &dto.SiswaView{Role: string(constants.RoleSiswa), Siswa: &sr}

	n, err := nilaiService.FindBySiswa(ctx, db, m.ID)
	switch {
	case err == nil:
		nr := nilaiDTO.FromModel(n)
		v.Nilai = &nr
	case !helper.IsNotFound(err):
		return nil, err
	}

	p, err := prediksiService.LatestForSiswa(ctx, db, m.ID)
	switch {
	case err == nil:
		pr := prediksiDTO.FromModel(p)
		v.Prediksi = &pr
	case !helper.IsNotFound(err):
		return nil, err
	}
	return v, nil
}
