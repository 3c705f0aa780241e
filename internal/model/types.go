package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AwardEntry 项目内嵌的单条获奖记录
type AwardEntry struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Year         int    `json:"year"`
	Description  string `json:"description"`
	Featured     bool   `json:"featured"`
}

// AwardList 获奖记录列表（JSON列）
//
// 历史数据中该列存在两种形态：原生JSON数组，以及被二次编码成
// JSON字符串的数组。Scan对两种形态都做解码，无法识别的值按空列表处理，
// 保证上层永远拿到一个列表
type AwardList []AwardEntry

// 实现 sql.Scanner
func (l *AwardList) Scan(value interface{}) error {
	if value == nil {
		*l = AwardList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into AwardList", value)
	}

	if len(bytes) == 0 {
		*l = AwardList{}
		return nil
	}

	// 原生JSON数组
	var entries []AwardEntry
	if err := json.Unmarshal(bytes, &entries); err == nil {
		*l = entries
		return nil
	}

	// 二次编码：列值是一个JSON字符串，其内容才是数组
	var encoded string
	if err := json.Unmarshal(bytes, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &entries); err == nil {
			*l = entries
			return nil
		}
	}

	*l = AwardList{}
	return nil
}

// 实现 driver.Valuer
func (l AwardList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// StringList 字符串列表（JSON列），null按空列表处理
type StringList []string

// 实现 sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, isStr := value.(string); isStr {
			bytes = []byte(s)
		} else {
			return fmt.Errorf("cannot scan %T into StringList", value)
		}
	}
	if len(bytes) == 0 {
		*l = StringList{}
		return nil
	}
	if err := json.Unmarshal(bytes, l); err != nil {
		*l = StringList{}
	}
	return nil
}

// 实现 driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// StringMap 键值映射（JSON列），null按空对象处理
type StringMap map[string]string

// 实现 sql.Scanner
func (m *StringMap) Scan(value interface{}) error {
	if value == nil {
		*m = StringMap{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, isStr := value.(string); isStr {
			bytes = []byte(s)
		} else {
			return fmt.Errorf("cannot scan %T into StringMap", value)
		}
	}
	if len(bytes) == 0 {
		*m = StringMap{}
		return nil
	}
	if err := json.Unmarshal(bytes, m); err != nil {
		*m = StringMap{}
	}
	return nil
}

// 实现 driver.Valuer
func (m StringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}
