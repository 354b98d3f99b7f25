package events

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ZerologSink logs every event as a structured record.
type ZerologSink struct {
	Log zerolog.Logger
}

func (s ZerologSink) Emit(e Event) {
	s.Log.Info().
		Str("event", e.EventName()).
		Str("detail", fmt.Sprintf("%+v", e)).
		Msg("engine event")
}
