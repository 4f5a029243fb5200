package seeder

import "log"

func Defaults(logger *log.Logger) []Seeder {
	return []Seeder{
		CandidatesSeeder{Logger: logger},
	}
}
