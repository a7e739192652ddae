package models

import (
	"github.com/zorgdesk/zorgcmd/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	LLMClient     LLMClient
	Classifier    CommandClassifier
	ScheduleStore ScheduleStore
	History       RecentActionStore
	Config        *config.Config
}
