package dto

import "time"

// PersonResponse 学生档案
type PersonResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	LogoURL     *string    `json:"logo_url,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
