package mq

import (
	"coursetally/internal/model"
)

// VisitMessage is the wire form published on the topic
type VisitMessage = model.VisitMessage
