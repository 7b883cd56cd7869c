package models

// Department represents a department students may belong to.
type Department struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Computer Engineering"`
	Code string `json:"code" example:"CENG"`
}
