package drills

import (
	"github.com/shelldrill/shelldrill/core/shell"
)

func init() {
	mustRegister(Drill{
		Name:  "sh",
		Topic: "shell",
		Short: "interactive practice shell",
		Day:   1,
		Proc:  shell.Run,
	})
}
