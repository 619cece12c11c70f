package game

// Configuration holds the world-level settings of a game.
type Configuration struct {
	StartingRoom       string   `json:"starting_room" yaml:"starting_room" validate:"required"`
	InitializationText string   `json:"initialization_text" yaml:"initialization_text" validate:"required"`
	VictoryText        string   `json:"victory_text" yaml:"victory_text" validate:"required"`
	WinningRoom        string   `json:"winning_room" yaml:"winning_room" validate:"required"`
	WinningItems       []string `json:"winning_items" yaml:"winning_items"`
}
