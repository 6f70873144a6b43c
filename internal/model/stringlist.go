// internal/model/stringlist.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList はDBにJSON文字列として保存される文字列配列です。
// パースに失敗したデータは空リストとして読み出します (防御的デフォルト)。
// 壊れた行が1件あるだけで出題やレビューが止まるのを避けるためです。
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("StringList.Value: %w", err)
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		*l = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		// 壊れたJSONはエラーにせず空リストに落とす
		*l = StringList{}
		return nil
	}
	*l = out
	return nil
}
