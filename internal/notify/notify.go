package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

const appName = "Productify"

// Desktop raises a system notification when a focus session finishes.
type Desktop struct {
	alert func(title, message string, icon any) error
}

func NewDesktop() *Desktop {
	return &Desktop{alert: beeep.Alert}
}

func (d *Desktop) SessionComplete(sessions int) error {
	title, msg := FormatSessionComplete(sessions)
	return d.alert(title, msg, "")
}

// Info shows a plain notification without sound.
func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func FormatSessionComplete(sessions int) (string, string) {
	title := appName + ": focus session complete"
	noun := "sessions"
	if sessions == 1 {
		noun = "session"
	}
	msg := fmt.Sprintf("Time for a break. %d %s completed so far.", sessions, noun)
	return title, msg
}
