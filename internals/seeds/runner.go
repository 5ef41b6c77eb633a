package seeds

import (
	sekolah "snbp_backend/internals/seeds/snbp/sekolah"
	users "snbp_backend/internals/seeds/users/auth"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {

	//* User (admin, guru, siswa demo)
	users.SeedUsersFromJSON(db, "internals/seeds/users/auth/data_users.json")

	//* Sekolah
	sekolah.SeedSekolahFromJSON(db, "internals/seeds/snbp/sekolah/data_sekolah.json")

}
