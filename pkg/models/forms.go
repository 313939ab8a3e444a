package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CaseTable is the full noun declension table: six cases in both numbers.
// Stored as a JSON text column.
type CaseTable struct {
	Singular CaseForms `json:"sg"`
	Plural   CaseForms `json:"pl"`
}

// IsZero reports whether the table has no forms at all.
func (t *CaseTable) IsZero() bool {
	return t.Singular.IsZero() && t.Plural.IsZero()
}

// Value implements driver.Valuer. An empty table is stored as NULL.
func (t CaseTable) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner.
func (t *CaseTable) Scan(src interface{}) error {
	return scanJSON(t, src)
}

// ParadigmTable is the full adjective declension table: six cases across the
// three singular genders plus the two plural agreement classes.
type ParadigmTable struct {
	MascSingular    CaseForms `json:"sg_m"`
	FemSingular     CaseForms `json:"sg_f"`
	NeutSingular    CaseForms `json:"sg_n"`
	MascPersonalPl  CaseForms `json:"pl_mo"`
	OtherPl         CaseForms `json:"pl_nmo"`
}

// IsZero reports whether the table has no forms at all.
func (t *ParadigmTable) IsZero() bool {
	return t.MascSingular.IsZero() && t.FemSingular.IsZero() && t.NeutSingular.IsZero() &&
		t.MascPersonalPl.IsZero() && t.OtherPl.IsZero()
}

// Value implements driver.Valuer. An empty table is stored as NULL.
func (t ParadigmTable) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner.
func (t *ParadigmTable) Scan(src interface{}) error {
	return scanJSON(t, src)
}

func scanJSON(dst interface{}, src interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported form table source type %T", src)
	}
}
