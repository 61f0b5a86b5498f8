package request

// MoveRequest is the request body for moving a player between zones
type MoveRequest struct {
	Item     string `json:"item"`
	From     string `json:"from"`
	To       string `json:"to"`
	OldIndex *int   `json:"old_index"`
	NewIndex *int   `json:"new_index"`
}
