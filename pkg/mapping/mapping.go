package mapping

import (
	"database/sql"

	"github.com/google/uuid"
)

func ValueToSQLNullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func PointerToSQLNullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func SQLNullStringToPointer(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}

func UUIDToSQLNullString(id *uuid.UUID) sql.NullString {
	if id == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: id.String(), Valid: true}
}

func SQLNullStringToUUID(value sql.NullString) *uuid.UUID {
	if !value.Valid {
		return nil
	}
	id, err := uuid.Parse(value.String)
	if err != nil {
		return nil
	}
	return &id
}
