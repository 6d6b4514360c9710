package models

// Department groups courses. Departments are seeded and read-only.
type Department struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
