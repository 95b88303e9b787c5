package seeder

func Defaults() []Seeder {
	return []Seeder{
		SkillSuggestionsSeeder{},
		ReviewersSeeder{},
	}
}
