package service

// Band: kelompok peluang dari persentase kelulusan (ambang yang dipakai layar prediksi).
type Band string

const (
	BandLolos  Band = "lolos"
	BandSedang Band = "sedang"
	BandRendah Band = "rendah"
)

var AllBands = []Band{BandLolos, BandSedang, BandRendah}

const (
	ambangLolos  = 75.0
	ambangSedang = 50.0
)

func (b Band) Valid() bool {
	switch b {
	case BandLolos, BandSedang, BandRendah:
		return true
	default:
		return false
	}
}

func BandOf(persentase float64) Band {
	switch {
	case persentase >= ambangLolos:
		return BandLolos
	case persentase >= ambangSedang:
		return BandSedang
	default:
		return BandRendah
	}
}

// Label peluang untuk tampilan.
func LabelOf(persentase float64) string {
	switch {
	case persentase >= 80:
		return "Sangat Tinggi"
	case persentase >= 60:
		return "Tinggi"
	case persentase >= 40:
		return "Sedang"
	default:
		return "Rendah"
	}
}

// BandCondition: potongan WHERE untuk filter band pada kolom persentase.
func BandCondition(b Band) (string, []any) {
	const col = "prediksi_persentase_kelulusan"
	switch b {
	case BandLolos:
		return col + " >= ?", []any{ambangLolos}
	case BandSedang:
		return col + " >= ? AND " + col + " < ?", []any{ambangSedang, ambangLolos}
	default:
		return col + " < ?", []any{ambangSedang}
	}
}
