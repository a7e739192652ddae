package main

import (
	cmd "github.com/zorgdesk/zorgcmd/cmd/zorgcmd"
	"github.com/zorgdesk/zorgcmd/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting zorgcmd")
	cmd.Execute()
}
