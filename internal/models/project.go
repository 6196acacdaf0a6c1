package models

import "time"

// FieldKind описывает тип пользовательского поля проекта.
type FieldKind string

const (
	FieldKindNumber   FieldKind = "number"
	FieldKindDatetime FieldKind = "datetime"
	FieldKindEnum     FieldKind = "enum"
	FieldKindString   FieldKind = "string"
)

// Valid проверяет, что тип поля известен системе.
func (k FieldKind) Valid() bool {
	switch k {
	case FieldKindNumber, FieldKindDatetime, FieldKindEnum, FieldKindString:
		return true
	default:
		return false
	}
}

// Project представляет проект внутри организации.
type Project struct {
	ID             int64     `db:"id" json:"id"`
	OrganizationID int64     `db:"organization_id" json:"organization_id"`
	Name           string    `db:"name" json:"name"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Field представляет типизированное пользовательское поле проекта.
// Значение по умолчанию хранится в колонке, соответствующей типу поля:
// number - default_value_float, datetime - default_value_int (Unix, секунды),
// enum и string - default_value_string.
type Field struct {
	ID                 int64     `db:"id" json:"id"`
	ProjectID          int64     `db:"project_id" json:"project_id"`
	Name               string    `db:"name" json:"name"`
	Kind               FieldKind `db:"kind" json:"kind"`
	DefaultValueInt    *int64    `db:"default_value_int" json:"default_value_int,omitempty"`
	DefaultValueFloat  *float64  `db:"default_value_float" json:"default_value_float,omitempty"`
	DefaultValueString *string   `db:"default_value_string" json:"default_value_string,omitempty"`
}

// CreateProjectRequest представляет тело запроса на создание проекта.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// CreateFieldRequest представляет тело запроса на добавление поля проекта.
// DefaultValue интерпретируется согласно Kind.
type CreateFieldRequest struct {
	Name         string    `json:"name"`
	Kind         FieldKind `json:"kind"`
	DefaultValue any       `json:"default_value"`
}
