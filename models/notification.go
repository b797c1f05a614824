package models

type NotificationState string

const (
	NotificationPending NotificationState = "PENDING"
	NotificationSent    NotificationState = "SENT"
	NotificationFailed  NotificationState = "FAILED"
)

// LogKind classifies audit log entries.
type LogKind string

const (
	LogCreated         LogKind = "CREATED"
	LogApproval        LogKind = "APPROVAL"
	LogSpecialApproval LogKind = "SPECIAL_APPROVAL"
	LogComment         LogKind = "COMMENT"
)
