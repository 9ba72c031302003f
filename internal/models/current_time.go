package models

import "time"

// CurrentTimeModel is the server clock as both text and epoch milliseconds.
type CurrentTimeModel struct {
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
}

// CurrentTimeData wraps CurrentTimeModel as a single-entry payload.
type CurrentTimeData struct {
	Entry CurrentTimeModel `json:"entry"`
}

func NewCurrentTimeData(t time.Time) CurrentTimeData {
	return CurrentTimeData{
		Entry: CurrentTimeModel{
			ReadableTime: t.Format(time.RFC3339),
			Time:         t.UnixMilli(),
		},
	}
}
