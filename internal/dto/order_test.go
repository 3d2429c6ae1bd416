package dto

import (
	"encoding/json"
	"testing"
)

type orderPayload struct {
	Order OrderValue `json:"order"`
}

func TestOrderValue_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    int
		present bool
	}{
		{"数字", `{"order":3}`, 3, true},
		{"数字字符串", `{"order":"3"}`, 3, true},
		{"小数字符串截断", `{"order":"3.7"}`, 3, true},
		{"小数截断", `{"order":2.9}`, 2, true},
		{"非数字回退为1", `{"order":"abc"}`, 1, true},
		{"负数", `{"order":-2}`, -2, true},
		{"null 视为缺省", `{"order":null}`, 0, false},
		{"字段缺省", `{}`, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p orderPayload
			if err := json.Unmarshal([]byte(tc.input), &p); err != nil {
				t.Fatalf("Unmarshal 不应报错: %v", err)
			}
			if p.Order.Present() != tc.present {
				t.Errorf("Present() 期望=%v，实际=%v", tc.present, p.Order.Present())
			}
			if tc.present && p.Order.Int() != tc.want {
				t.Errorf("Int() 期望=%d，实际=%d", tc.want, p.Order.Int())
			}
		})
	}
}

func TestOrderValue_NewOrderValue(t *testing.T) {
	v := NewOrderValue(5)
	if !v.Present() || v.Int() != 5 {
		t.Errorf("构造值不符: present=%v int=%d", v.Present(), v.Int())
	}
}
