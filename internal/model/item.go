package model

// Item is one checklist entry. Its identifier is not stored: it is derived
// from the owning list's number and the item's current position (see ItemID).
type Item struct {
	Value   string `json:"value"`
	Checked bool   `json:"checked"`
}
