package service

import "sort"

// TableSpec: tabel yang boleh dibuka di browser relasi admin.
type TableSpec struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Columns     []string `json:"columns"`
	OrderBy     string   `json:"-"`
	SoftDeleted string   `json:"-"`
}

// Kolom sensitif (password, token) sengaja tidak dicantumkan.
var whitelist = map[string]TableSpec{
	"users": {
		Label:       "User",
		Columns:     []string{"user_id", "user_nama", "user_email", "user_is_active", "user_created_at"},
		OrderBy:     "user_created_at DESC",
		SoftDeleted: "user_deleted_at",
	},
	"user_roles": {
		Label:   "Role User",
		Columns: []string{"user_role_id", "user_role_user_id", "user_role_role", "user_role_created_at"},
		OrderBy: "user_role_created_at DESC",
	},
	"sekolah": {
		Label:       "Sekolah",
		Columns:     []string{"sekolah_id", "sekolah_nama", "sekolah_npsn", "sekolah_akreditasi", "sekolah_kota", "sekolah_provinsi", "sekolah_kuota_snbp", "sekolah_created_at"},
		OrderBy:     "sekolah_nama ASC",
		SoftDeleted: "sekolah_deleted_at",
	},
	"guru": {
		Label:       "Guru",
		Columns:     []string{"guru_id", "guru_user_id", "guru_nama", "guru_nip", "guru_sekolah_id", "guru_mata_pelajaran", "guru_is_active", "guru_created_at"},
		OrderBy:     "guru_nama ASC",
		SoftDeleted: "guru_deleted_at",
	},
	"siswa": {
		Label:       "Siswa",
		Columns:     []string{"siswa_id", "siswa_user_id", "siswa_nama", "siswa_nisn", "siswa_kelas", "siswa_jurusan", "siswa_sekolah_id", "siswa_guru_id", "siswa_peringkat_sekolah", "siswa_is_active", "siswa_created_at"},
		OrderBy:     "siswa_created_at DESC",
		SoftDeleted: "siswa_deleted_at",
	},
	"nilai": {
		Label:   "Nilai",
		Columns: []string{"nilai_id", "nilai_siswa_id", "nilai_semester_1", "nilai_semester_2", "nilai_semester_3", "nilai_semester_4", "nilai_semester_5", "nilai_rata_rata", "nilai_prestasi", "nilai_portofolio", "nilai_created_at"},
		OrderBy: "nilai_created_at DESC",
	},
	"prediksi": {
		Label:       "Prediksi",
		Columns:     []string{"prediksi_id", "prediksi_siswa_id", "prediksi_persentase_kelulusan", "prediksi_ptn_rekomendasi_1", "prediksi_prodi_rekomendasi_1", "prediksi_ptn_rekomendasi_2", "prediksi_prodi_rekomendasi_2", "prediksi_status", "prediksi_created_at"},
		OrderBy:     "prediksi_created_at DESC",
		SoftDeleted: "prediksi_deleted_at",
	},
	"preprocessing_log": {
		Label:   "Log Preprocessing",
		Columns: []string{"preprocessing_log_id", "preprocessing_log_batch_id", "preprocessing_log_tahap", "preprocessing_log_nama_tahap", "preprocessing_log_jumlah_data_input", "preprocessing_log_jumlah_data_output", "preprocessing_log_jumlah_data_error", "preprocessing_log_status", "preprocessing_log_created_at"},
		OrderBy: "preprocessing_log_created_at DESC",
	},
	"preprocessing_data": {
		Label:   "Data Preprocessing",
		Columns: []string{"preprocessing_data_id", "preprocessing_data_log_id", "preprocessing_data_siswa_id", "preprocessing_data_is_valid", "preprocessing_data_validation_errors", "preprocessing_data_created_at"},
		OrderBy: "preprocessing_data_created_at DESC",
	},
	"activity_log": {
		Label:   "Activity Log",
		Columns: []string{"activity_log_id", "activity_log_user_id", "activity_log_action", "activity_log_entity_type", "activity_log_entity_id", "activity_log_ip_address", "activity_log_created_at"},
		OrderBy: "activity_log_created_at DESC",
	},
}

// Lookup: ok=false untuk tabel di luar whitelist.
func Lookup(name string) (TableSpec, bool) {
	spec, ok := whitelist[name]
	if ok {
		spec.Name = name
	}
	return spec, ok
}

// Tables: semua tabel whitelist, urut nama.
func Tables() []TableSpec {
	out := make([]TableSpec, 0, len(whitelist))
	for name := range whitelist {
		spec, _ := Lookup(name)
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
