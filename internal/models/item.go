package models

import "time"

// Item представляет элемент проекта с набором значений пользовательских полей.
type Item struct {
	ID        int64       `db:"id" json:"id"`
	ProjectID int64       `db:"project_id" json:"project_id"`
	Values    []ItemValue `db:"-" json:"values"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt time.Time   `db:"updated_at" json:"updated_at"`
}

// ItemValue представляет значение одного поля элемента.
// Колонка для значения выбирается по типу поля так же,
// как для значения по умолчанию в Field.
type ItemValue struct {
	ItemID      int64     `db:"item_id" json:"-"`
	FieldID     int64     `db:"field_id" json:"field_id"`
	Kind        FieldKind `db:"kind" json:"kind"`
	ValueInt    *int64    `db:"value_int" json:"value_int,omitempty"`
	ValueFloat  *float64  `db:"value_float" json:"value_float,omitempty"`
	ValueString *string   `db:"value_string" json:"value_string,omitempty"`
}

// CreateItemRequest представляет тело запроса на создание элемента.
type CreateItemRequest struct {
	Values []ItemValueInput `json:"values"`
}

// ItemValueInput - значение поля в запросе. Value интерпретируется
// согласно типу поля FieldID.
type ItemValueInput struct {
	FieldID int64 `json:"field_id"`
	Value   any   `json:"value"`
}
