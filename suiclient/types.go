package suiclient

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
)

// ObjectDataOptions selects which parts of an object sui_getObject returns.
type ObjectDataOptions struct {
	ShowType                bool `json:"showType,omitempty"`
	ShowOwner               bool `json:"showOwner,omitempty"`
	ShowPreviousTransaction bool `json:"showPreviousTransaction,omitempty"`
	ShowDisplay             bool `json:"showDisplay,omitempty"`
	ShowContent             bool `json:"showContent,omitempty"`
	ShowBcs                 bool `json:"showBcs,omitempty"`
	ShowStorageRebate       bool `json:"showStorageRebate,omitempty"`
}

// SequenceNumber is an object version. Nodes serialise it either as a JSON
// number or as a decimal string.
type SequenceNumber uint64

func (s *SequenceNumber) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(data, `"`))
	if raw == "null" || raw == "" {
		*s = 0
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid sequence number %s: %w", data, err)
	}
	*s = SequenceNumber(v)
	return nil
}

func (s SequenceNumber) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatUint(uint64(s), 10))), nil
}

// ObjectResponse is the result of sui_getObject. Exactly one of Data and
// Error is set.
type ObjectResponse struct {
	Data  *ObjectData  `json:"data,omitempty"`
	Error *ObjectError `json:"error,omitempty"`
}

type ObjectData struct {
	ObjectID            string          `json:"objectId"`
	Version             SequenceNumber  `json:"version"`
	Digest              string          `json:"digest"`
	Type                string          `json:"type,omitempty"`
	Owner               *Owner          `json:"owner,omitempty"`
	PreviousTransaction string          `json:"previousTransaction,omitempty"`
	StorageRebate       string          `json:"storageRebate,omitempty"`
	Display             json.RawMessage `json:"display,omitempty"`
	Content             *ParsedData     `json:"content,omitempty"`
	Bcs                 *RawData        `json:"bcs,omitempty"`
}

// ParsedData is the JSON projection of an object (showContent).
type ParsedData struct {
	DataType          string          `json:"dataType"`
	Type              string          `json:"type,omitempty"`
	HasPublicTransfer bool            `json:"hasPublicTransfer,omitempty"`
	Fields            json.RawMessage `json:"fields,omitempty"`
}

// FieldsMap decodes Fields keeping numbers as json.Number.
func (p *ParsedData) FieldsMap() (map[string]any, error) {
	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(p.Fields))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("failed to decode object fields: %w", err)
	}
	return fields, nil
}

// RawData is the BCS projection of an object (showBcs).
type RawData struct {
	DataType          string         `json:"dataType"`
	Type              string         `json:"type,omitempty"`
	HasPublicTransfer bool           `json:"hasPublicTransfer,omitempty"`
	Version           SequenceNumber `json:"version,omitempty"`
	BcsBytes          string         `json:"bcsBytes"`
}

// Bytes decodes the base64 BCS payload.
func (r *RawData) Bytes() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(r.BcsBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bcs bytes: %w", err)
	}
	return b, nil
}

// Owner is one of AddressOwner, ObjectOwner, Shared or Immutable.
type Owner struct {
	AddressOwner string       `json:"AddressOwner,omitempty"`
	ObjectOwner  string       `json:"ObjectOwner,omitempty"`
	Shared       *SharedOwner `json:"Shared,omitempty"`
	Immutable    bool         `json:"-"`
}

type SharedOwner struct {
	InitialSharedVersion SequenceNumber `json:"initial_shared_version"`
}

func (o *Owner) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "Immutable" {
			return fmt.Errorf("unknown owner kind %q", s)
		}
		*o = Owner{Immutable: true}
		return nil
	}
	type plain Owner
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*o = Owner(p)
	return nil
}

func (o Owner) MarshalJSON() ([]byte, error) {
	if o.Immutable {
		return []byte(`"Immutable"`), nil
	}
	type plain Owner
	return json.Marshal(plain(o))
}

// IsShared reports whether the object is a shared object.
func (o *Owner) IsShared() bool {
	return o != nil && o.Shared != nil
}

// DynamicFieldName identifies a dynamic field by its key type and JSON value.
type DynamicFieldName struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// DevInspectResults is the result of sui_devInspectTransactionBlock.
type DevInspectResults struct {
	Effects json.RawMessage   `json:"effects,omitempty"`
	Events  json.RawMessage   `json:"events,omitempty"`
	Results []ExecutionResult `json:"results,omitempty"`
	Error   string            `json:"error,omitempty"`
}

type ExecutionResult struct {
	MutableReferenceOutputs json.RawMessage `json:"mutableReferenceOutputs,omitempty"`
	ReturnValues            []ReturnValue   `json:"returnValues,omitempty"`
}

// ReturnValue is a `[bytes, type]` pair where bytes is a JSON array of u8.
type ReturnValue struct {
	Bytes []byte
	Type  string
}

func (r *ReturnValue) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("return value: expected [bytes, type], got %d elements", len(pair))
	}
	var raw []uint16
	if err := json.Unmarshal(pair[0], &raw); err != nil {
		return fmt.Errorf("return value bytes: %w", err)
	}
	r.Bytes = make([]byte, len(raw))
	for i, b := range raw {
		if b > 0xff {
			return fmt.Errorf("return value bytes: %d out of range", b)
		}
		r.Bytes[i] = byte(b)
	}
	return json.Unmarshal(pair[1], &r.Type)
}

func (r ReturnValue) MarshalJSON() ([]byte, error) {
	raw := make([]uint16, len(r.Bytes))
	for i, b := range r.Bytes {
		raw[i] = uint16(b)
	}
	return json.Marshal([]any{raw, r.Type})
}
