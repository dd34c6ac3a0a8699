// Package mazeapi provides structures and utilities for crafting and fetching mazes.
package mazeapi

// CraftRequest represents a request to craft a new maze.
type CraftRequest struct {
	Size int   `json:"size" binding:"required"`
	Seed int64 `json:"seed"`
}

// MazeResponse represents a stored maze returned to a client.
type MazeResponse struct {
	ID          string `json:"id"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	Seed        int64  `json:"seed"`
	EntranceRow int    `json:"entrance_row"`
	EntranceCol int    `json:"entrance_col"`
	ExitRow     int    `json:"exit_row"`
	ExitCol     int    `json:"exit_col"`
	PathLength  int    `json:"path_length"`
	Data        string `json:"data"`
	CreatedBy   string `json:"created_by"`
}
