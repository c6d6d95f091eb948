package models

// PaddyType is a master record for a paddy variety. Transaction rows
// reference the ID, which stays stable across renames.
type PaddyType struct {
	ID   string `json:"paddy_id"`
	Name string `json:"paddy_name"`
}
