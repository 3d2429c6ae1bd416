package dto

import (
	"strconv"
	"strings"
)

// OrderValue 展示顺序字段
// 前端表单可能把 order 提交为 JSON 数字或字符串，这里统一收敛为整数：
//   - 3 / "3"   → 3
//   - "3.7"     → 3（截断）
//   - "abc"     → 1（非数字回退默认值）
//   - 缺省/null → Present() 为 false，由处理器做必填校验
type OrderValue struct {
	value   int
	present bool
}

// NewOrderValue 构造已赋值的 OrderValue（测试与内部使用）
func NewOrderValue(n int) OrderValue {
	return OrderValue{value: n, present: true}
}

// UnmarshalJSON 兼容数字与字符串两种 JSON 形式
func (o *OrderValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		o.present = false
		return nil
	}

	o.present = true
	s = strings.TrimSpace(strings.Trim(s, `"`))

	if n, err := strconv.Atoi(s); err == nil {
		o.value = n
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		o.value = int(f)
		return nil
	}

	// 非数字输入回退为 1，与历史行为保持一致
	o.value = 1
	return nil
}

// Int 整数值
func (o OrderValue) Int() int { return o.value }

// Present 请求体中是否出现了该字段
func (o OrderValue) Present() bool { return o.present }
