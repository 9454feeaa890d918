package demo

import "github.com/benz9527/xlinked/xlog"

var _ xlog.Banner = Banner{}

type Banner struct{}

func (Banner) JSON() string {
	return `{"app":"xlinked","techniques":["multiple-pass","slow-fast","temporary-head"]}`
}

func (Banner) PlainText() string {
	return `
xlinked - singly linked list techniques
  multiple pass | slow fast | temporary head
`
}
