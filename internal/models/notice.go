package models

import "time"

// NoticeEvent is one threshold-crossing alert as handed to the alert sink.
//
// Example JSON:
//
//	{
//	  "noticeId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "note": "http request flood",
//	  "metricId": "http_requests",
//	  "filterName": "by_client_subnet",
//	  "index": "metric_index(network=10.0.0.0/24)",
//	  "value": 1042,
//	  "threshold": 1000,
//	  "node": "edge-nyc-04",
//	  "raisedAt": "2025-12-28T18:03:12Z"
//	}
type NoticeEvent struct {
	NoticeID   string    `json:"noticeId"`
	Note       string    `json:"note"`
	MetricID   string    `json:"metricId"`
	FilterName string    `json:"filterName"`
	Index      string    `json:"index"`
	Value      int64     `json:"value"`
	Threshold  int64     `json:"threshold"`
	Node       string    `json:"node"`
	RaisedAt   time.Time `json:"raisedAt"`
}

// BreakRecord is one (index, value) pair drained from a counter store at a
// break, as handed to the logging sink.
type BreakRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	MetricID   string    `json:"metricId"`
	FilterName string    `json:"filterName"`
	Index      Index     `json:"index"`
	Value      int64     `json:"value"`
}
