package model

import "encoding/json"

// Optional - трехзначное поле частичного обновления: ключ может
// отсутствовать в запросе (оставить как есть), быть явным null (очистить)
// или содержать значение. Стандартный encoding/json не различает первые
// два случая, поэтому признак присутствия ключа взводится вручную.
type Optional[T any] struct {
	Set   bool // ключ присутствовал в JSON
	Valid bool // значение не null
	Value T
}

// Some возвращает установленное значение (удобно в тестах и сервисах).
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null возвращает явное "очистить значение".
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON вызывается только для присутствующих ключей,
// поэтому сам факт вызова означает Set=true.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON сериализует значение либо null; отсутствие ключа
// средствами encoding/json не выразить, но Optional наружу не отдается.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
