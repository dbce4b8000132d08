package main

import (
	"noticewatch/cmd/noticewatch/commands"
	"noticewatch/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
