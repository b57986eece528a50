package console

import (
	"fmt"
)

const (
	banner      = "統一編號檢查程式"
	firstPrompt = "請輸入一個統一編號（8位數字）或輸入 'q' 退出:"
	nextPrompt  = "\n請輸入下一個統一編號或輸入 'q' 退出:"
	exitMessage = "程式結束"
)

type response struct {
	status status
	number string
}

func (r response) String() string {
	if r.status == Valid {
		return fmt.Sprintf("「%s」是有效的統一編號", r.number)
	}

	return fmt.Sprintf("「%s」不是有效的統一編號", r.number)
}

type status int

const (
	Valid status = iota
	Invalid
)

func (s status) String() string {
	switch s {
	case Valid:
		return "VALID"
	case Invalid:
		return "INVALID"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}
