package seeder

// Defaults returns the standard seed order: schema first, then the
// vocabulary. Demo data is opt-in via the seed command flag.
func Defaults(withDemo bool) []Seeder {
	seeders := []Seeder{
		SchemaSeeder{},
		CanonicalSkillsSeeder{},
	}
	if withDemo {
		seeders = append(seeders, DemoSeeder{})
	}
	return seeders
}
