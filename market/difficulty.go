package market

// Difficulty is a new-game preset. It sets starting parameters only;
// nothing re-reads it after the game is created.
type Difficulty struct {
	Name          string `yaml:"name"`
	DisplayName   string `yaml:"display_name"`
	StartCash     int64  `yaml:"start_cash"`
	StartCapacity int64  `yaml:"start_capacity"`
	Description   string `yaml:"description"`
}

// Difficulties is the built-in preset table, easiest first.
var Difficulties = []Difficulty{
	{Name: "playground", DisplayName: "Playground", StartCash: 1_000_000, StartCapacity: 1000, Description: "Unlimited funds for experimentation"},
	{Name: "easy", DisplayName: "Easy", StartCash: 100_000, StartCapacity: 100, Description: "Generous starting resources"},
	{Name: "normal", DisplayName: "Normal", StartCash: 50_000, StartCapacity: 50, Description: "Balanced challenge"},
	{Name: "hard", DisplayName: "Hard", StartCash: 10_000, StartCapacity: 10, Description: "Limited resources, plan ahead"},
	{Name: "insane", DisplayName: "Insane", StartCash: 0, StartCapacity: 1, Description: "Start with nothing"},
}
