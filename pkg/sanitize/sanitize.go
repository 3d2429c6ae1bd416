package sanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// 富文本白名单策略：课题正文在写入时过滤，读取端可直接渲染。
// 采用 bluemonday 的 UGC 策略（保留常见排版标签，剥离脚本与事件属性），
// 而不是整体转义 —— 课程内容本身就是富文本，转义会毁掉功能。

var (
	once   sync.Once
	policy *bluemonday.Policy
)

func ugcPolicy() *bluemonday.Policy {
	once.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("style").OnElements("span", "p") // 编辑器产出的内联排版
		policy = p
	})
	return policy
}

// HTML 过滤富文本片段，返回可安全存储/渲染的 HTML
func HTML(fragment string) string {
	return ugcPolicy().Sanitize(fragment)
}
