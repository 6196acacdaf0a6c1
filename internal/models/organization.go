package models

import "time"

// Organization представляет организацию - корень иерархии.
// Организация содержит проекты, проекты содержат элементы.
type Organization struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CreateOrganizationRequest представляет тело запроса на создание организации.
type CreateOrganizationRequest struct {
	Name string `json:"name"`
}
