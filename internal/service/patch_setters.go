// FILE: internal/service/patch_setters.go
// Typed decoding for patch operation values. Each known field name maps to a
// static setter; anything outside the allow-list fails closed with a
// validation error before a single field is written.
package service

import (
	"encoding/json"
	"time"

	"ocs-provisioning-be/internal/dto"
	"ocs-provisioning-be/internal/pkg/apperror"

	"gorm.io/datatypes"
)

func stringValue(op dto.PatchOperation) (string, error) {
	s, ok := op.FieldValue.(string)
	if !ok {
		return "", apperror.Validation("field %q expects a string value", op.FieldName)
	}
	return s, nil
}

func stringPtrValue(op dto.PatchOperation) (*string, error) {
	if op.FieldValue == nil {
		return nil, nil
	}
	s, err := stringValue(op)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func boolValue(op dto.PatchOperation) (bool, error) {
	b, ok := op.FieldValue.(bool)
	if !ok {
		return false, apperror.Validation("field %q expects a boolean value", op.FieldName)
	}
	return b, nil
}

func intValue(op dto.PatchOperation) (int, error) {
	// JSON numbers decode as float64
	f, ok := op.FieldValue.(float64)
	if !ok || f != float64(int(f)) {
		return 0, apperror.Validation("field %q expects an integer value", op.FieldName)
	}
	return int(f), nil
}

func intPtrValue(op dto.PatchOperation) (*int, error) {
	if op.FieldValue == nil {
		return nil, nil
	}
	i, err := intValue(op)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func timeValue(op dto.PatchOperation) (time.Time, error) {
	s, ok := op.FieldValue.(string)
	if !ok {
		return time.Time{}, apperror.Validation("field %q expects an RFC3339 timestamp", op.FieldName)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperror.Validation("field %q expects an RFC3339 timestamp", op.FieldName)
	}
	return t, nil
}

func timePtrValue(op dto.PatchOperation) (*time.Time, error) {
	if op.FieldValue == nil {
		return nil, nil
	}
	t, err := timeValue(op)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func jsonValue(op dto.PatchOperation) (datatypes.JSON, error) {
	if op.FieldValue == nil {
		return nil, nil
	}
	raw, err := json.Marshal(op.FieldValue)
	if err != nil {
		return nil, apperror.Validation("field %q holds a value that cannot be encoded", op.FieldName)
	}
	return datatypes.JSON(raw), nil
}
